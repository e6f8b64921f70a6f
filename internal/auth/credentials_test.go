package auth_test

import (
	"strings"
	"testing"

	"github.com/messagely/messagely/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentials_HashAndVerify(t *testing.T) {
	creds := auth.NewCredentials(bcrypt.MinCost)

	hash, err := creds.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	if hash == "secret" {
		t.Fatal("Hash() returned the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("Hash() = %q, want a bcrypt hash", hash)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"correct password", "secret", hash, true},
		{"wrong password", "not-secret", hash, false},
		{"empty password", "", hash, false},
		{"garbage hash", "secret", "not-a-hash", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := creds.Verify(tt.password, tt.hash); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestCredentials_HashesAreSalted(t *testing.T) {
	creds := auth.NewCredentials(bcrypt.MinCost)

	h1, err := creds.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	h2, err := creds.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password are identical, expected distinct salts")
	}
	if !creds.Verify("secret", h1) || !creds.Verify("secret", h2) {
		t.Error("both hashes should verify against the original password")
	}
}

func TestNewCredentials_ClampsCost(t *testing.T) {
	// An out-of-range cost must not make hashing unusable.
	creds := auth.NewCredentials(1000)

	hash, err := creds.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() with clamped cost error: %v", err)
	}
	if !creds.Verify("secret", hash) {
		t.Error("Verify() failed for hash produced with clamped cost")
	}
}
