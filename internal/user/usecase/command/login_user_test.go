package command

import (
	"testing"

	"github.com/warungpos/pos-service/internal/user/domain"
	"github.com/warungpos/pos-service/pkg/auth"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, active bool) *domain.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	user := &domain.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		FullName: "Test User",
		Role:     domain.RoleCashier,
		IsActive: active,
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return user
}

func TestLoginUser(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "siti", "secret123", true)

	handler := NewLoginUserHandler(repo)
	resp, err := handler.Handle(LoginUserCommand{Username: "siti", Password: "secret123"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if resp.Token == "" {
		t.Error("expected a JWT token")
	}
	if resp.User.Username != "siti" {
		t.Errorf("user = %q, want %q", resp.User.Username, "siti")
	}

	claims, err := auth.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Role != domain.RoleCashier {
		t.Errorf("token role = %q, want %q", claims.Role, domain.RoleCashier)
	}
}

func TestLoginUserWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "siti", "secret123", true)

	handler := NewLoginUserHandler(repo)
	if _, err := handler.Handle(LoginUserCommand{Username: "siti", Password: "wrong"}); err == nil {
		t.Error("expected error for wrong password")
	}
}

func TestLoginUserUnknown(t *testing.T) {
	handler := NewLoginUserHandler(newFakeUserRepo())
	if _, err := handler.Handle(LoginUserCommand{Username: "ghost", Password: "secret123"}); err == nil {
		t.Error("expected error for unknown user")
	}
}

func TestLoginUserDeactivated(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "siti", "secret123", false)

	handler := NewLoginUserHandler(repo)
	if _, err := handler.Handle(LoginUserCommand{Username: "siti", Password: "secret123"}); err == nil {
		t.Error("expected error for deactivated account")
	}
}
