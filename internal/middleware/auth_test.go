package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/warungpos/pos-service/internal/user/domain"
	"github.com/warungpos/pos-service/pkg/auth"
)

func newAuthedRequest(t *testing.T, userID uint, role string) *http.Request {
	t.Helper()

	token, err := auth.GenerateToken(userID, "test", role)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthMiddleware(t *testing.T) {
	var gotUserID uint
	var gotRole string
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
		gotRole, _ = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, newAuthedRequest(t, 7, domain.RoleCashier))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotUserID != 7 {
		t.Errorf("user id from context = %d, want 7", gotUserID)
	}
	if gotRole != domain.RoleCashier {
		t.Errorf("role from context = %q, want %q", gotRole, domain.RoleCashier)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	called := false
	handler := AdminMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, newAuthedRequest(t, 1, domain.RoleAdmin))
	if rec.Code != http.StatusOK || !called {
		t.Errorf("admin request: status = %d, called = %v", rec.Code, called)
	}

	rec = httptest.NewRecorder()
	handler(rec, newAuthedRequest(t, 2, domain.RoleCashier))
	if rec.Code != http.StatusForbidden {
		t.Errorf("cashier request: status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}
