package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "secret123" {
		t.Error("hash should differ from the plain password")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("CheckPassword() should accept the correct password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword() should reject a wrong password")
	}
}
