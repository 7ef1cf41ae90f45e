// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash not in PHC argon2id format: %s", hash)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Error("correct password rejected")
	}

	ok, err = VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ok {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password must differ by salt")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("anything", "not-a-phc-string"); err == nil {
		t.Error("expected error for malformed hash")
	}
	if _, err := VerifyPassword("anything", "$bcrypt$v=19$m=1,t=1,p=1$a$b"); err == nil {
		t.Error("expected error for unsupported algorithm")
	}
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	ok, _, err := VerifyPasswordTimingSafe("secret", &hash)
	if err != nil {
		t.Fatalf("VerifyPasswordTimingSafe: %v", err)
	}
	if !ok {
		t.Error("correct password rejected")
	}

	// Absent hash burns a comparison but always fails.
	ok, _, err = VerifyPasswordTimingSafe("secret", nil)
	if err != nil {
		t.Fatalf("VerifyPasswordTimingSafe(nil): %v", err)
	}
	if ok {
		t.Error("nil hash must never verify")
	}

	empty := ""
	ok, _, err = VerifyPasswordTimingSafe("secret", &empty)
	if err != nil {
		t.Fatalf("VerifyPasswordTimingSafe(empty): %v", err)
	}
	if ok {
		t.Error("empty hash must never verify")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	token, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	hash := HashToken(token)
	if !CompareTokenHash(token, hash) {
		t.Error("token must match its own hash")
	}
	if CompareTokenHash("other-token", hash) {
		t.Error("different token must not match")
	}
}
