package auth

import (
	"testing"

	"github.com/hawkerbazaar/storefront/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &domain.User{ID: "u1", Name: "Priya Sharma", Phone: "+91 98765 43210", Role: domain.RoleCustomer}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	restored, err := UserFromToken(token)
	if err != nil {
		t.Fatalf("UserFromToken() error: %v", err)
	}
	if *restored != *user {
		t.Errorf("UserFromToken() = %+v, want %+v", restored, user)
	}
}

func TestUserFromToken_RejectsGarbage(t *testing.T) {
	if _, err := UserFromToken("not-a-token"); err == nil {
		t.Error("UserFromToken() accepted garbage")
	}
	if _, err := UserFromToken(""); err == nil {
		t.Error("UserFromToken() accepted empty string")
	}
}
