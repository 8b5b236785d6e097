package auth

import (
	"testing"
	"time"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Generate("user-1", "jane@example.com", "teacher")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "jane@example.com")
	}
	if claims.Role != "teacher" {
		t.Errorf("Role = %q, want %q", claims.Role, "teacher")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Generate("user-1", "jane@example.com", "teacher")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := issuer.Validate(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Generate("user-1", "jane@example.com", "teacher")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewTokenIssuer("secret-b", time.Hour).Validate(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	if _, err := issuer.Validate("not.a.token"); err == nil {
		t.Error("malformed token accepted")
	}
}
