package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("amina", time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	subject, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "amina" {
		t.Fatalf("got subject %q, want amina", subject)
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("amina", time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Fatal("expired token should not verify")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("amina", time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("token signed with another secret should not verify")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "s3cret") {
		t.Fatal("correct password should match")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password should not match")
	}
}
