package command

import (
	"fmt"
	"testing"

	"github.com/warungpos/pos-service/internal/user/domain"
)

// fakeUserRepo is an in-memory UserRepository for tests
type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user not found")
}

func (f *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (f *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (f *fakeUserRepo) FindAll(limit, offset int) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByRole(role string, limit, offset int) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(role string) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountActive() (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{
		Username: "budi",
		Email:    "budi@example.com",
		Password: "secret123",
		FullName: "Budi Santoso",
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if user.Role != domain.RoleCashier {
		t.Errorf("default role = %q, want %q", user.Role, domain.RoleCashier)
	}
	if !user.IsActive {
		t.Error("new user should be active")
	}
	if user.Password == "secret123" {
		t.Error("password should be hashed, not stored in plain text")
	}
}

func TestRegisterUserValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  RegisterUserCommand
	}{
		{"missing username", RegisterUserCommand{Email: "a@b.c", Password: "secret123", FullName: "A"}},
		{"missing email", RegisterUserCommand{Username: "a", Password: "secret123", FullName: "A"}},
		{"missing password", RegisterUserCommand{Username: "a", Email: "a@b.c", FullName: "A"}},
		{"short password", RegisterUserCommand{Username: "a", Email: "a@b.c", Password: "12345", FullName: "A"}},
		{"missing full name", RegisterUserCommand{Username: "a", Email: "a@b.c", Password: "secret123"}},
		{"invalid role", RegisterUserCommand{Username: "a", Email: "a@b.c", Password: "secret123", FullName: "A", Role: "manager"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRegisterUserHandler(newFakeUserRepo())
			if _, err := handler.Handle(tt.cmd); err == nil {
				t.Error("Handle() expected error, got nil")
			}
		})
	}
}

func TestRegisterUserDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	first := RegisterUserCommand{
		Username: "budi",
		Email:    "budi@example.com",
		Password: "secret123",
		FullName: "Budi Santoso",
	}
	if _, err := handler.Handle(first); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	dupUsername := first
	dupUsername.Email = "other@example.com"
	if _, err := handler.Handle(dupUsername); err == nil {
		t.Error("expected error for duplicate username")
	}

	dupEmail := first
	dupEmail.Username = "other"
	if _, err := handler.Handle(dupEmail); err == nil {
		t.Error("expected error for duplicate email")
	}
}
