package auth

import (
	"testing"
	"time"
)

func TestMintAndParse(t *testing.T) {
	secret := "test-secret"

	tests := []struct {
		name  string
		scope string
	}{
		{name: "user scope", scope: ScopeUser},
		{name: "admin scope", scope: ScopeAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := MintTokens(42, "user@example.com", tt.scope, secret, time.Hour, 24*time.Hour)
			if err != nil {
				t.Fatalf("MintTokens() error = %v", err)
			}
			if pair.AccessToken == "" || pair.RefreshToken == "" {
				t.Fatal("MintTokens() returned empty token")
			}

			claims, err := ParseClaims(pair.AccessToken, secret)
			if err != nil {
				t.Fatalf("ParseClaims() error = %v", err)
			}
			if claims.UserID != 42 {
				t.Errorf("UserID = %d, want 42", claims.UserID)
			}
			if claims.Email != "user@example.com" {
				t.Errorf("Email = %q, want user@example.com", claims.Email)
			}
			if claims.Scope != tt.scope {
				t.Errorf("Scope = %q, want %q", claims.Scope, tt.scope)
			}
		})
	}
}

func TestParseClaims_WrongSecret(t *testing.T) {
	pair, err := MintTokens(1, "a@b.c", ScopeUser, "secret-a", time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("MintTokens() error = %v", err)
	}

	if _, err := ParseClaims(pair.AccessToken, "secret-b"); err == nil {
		t.Error("ParseClaims() with wrong secret should fail")
	}
}

func TestParseClaims_Expired(t *testing.T) {
	pair, err := MintTokens(1, "a@b.c", ScopeUser, "secret", -time.Minute, -time.Minute)
	if err != nil {
		t.Fatalf("MintTokens() error = %v", err)
	}

	if _, err := ParseClaims(pair.AccessToken, "secret"); err == nil {
		t.Error("ParseClaims() with expired token should fail")
	}
}
