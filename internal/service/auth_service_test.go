package service

import (
	"testing"

	"github.com/abidnoul/portfolio/internal/util"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc := NewAuthService("admin@example.com", string(hash), "test-secret")

	resp, err := svc.Login(LoginRequest{Email: "admin@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := util.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("unexpected claims email: %q", claims.Email)
	}
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	svc := NewAuthService("admin@example.com", string(hash), "test-secret")

	if _, err := svc.Login(LoginRequest{Email: "admin@example.com", Password: "wrong"}); err == nil {
		t.Error("expected error for wrong password")
	}
	if _, err := svc.Login(LoginRequest{Email: "other@example.com", Password: "hunter2"}); err == nil {
		t.Error("expected error for wrong email")
	}
}

func TestAuthLoginUnconfigured(t *testing.T) {
	svc := NewAuthService("", "", "test-secret")
	if _, err := svc.Login(LoginRequest{Email: "a@b.c", Password: "x"}); err == nil {
		t.Error("expected error when admin credentials are not configured")
	}
}
