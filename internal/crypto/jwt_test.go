package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken("user-1", "a@example.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("ValidateToken() UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Email != "a@example.com" {
		t.Errorf("ValidateToken() Email = %q, want %q", claims.Email, "a@example.com")
	}
}

func TestValidateTokenRejects(t *testing.T) {
	good, err := GenerateToken("user-1", "a@example.com", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	wrongIssuer := signClaims(t, "correct-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-1",
	})

	wrongAudience := signClaims(t, "correct-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{"other-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-1",
	})

	expired := signClaims(t, "correct-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: "user-1",
	})

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"garbage", "not-a-valid-token", "correct-secret"},
		{"wrong secret", good, "wrong-secret"},
		{"wrong issuer", wrongIssuer, "correct-secret"},
		{"wrong audience", wrongAudience, "correct-secret"},
		{"expired", expired, "correct-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.token, tt.secret)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestInspectToken(t *testing.T) {
	token, err := GenerateToken("user-9", "z@example.com", "any-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	info, err := InspectToken(token)
	if err != nil {
		t.Fatalf("InspectToken() unexpected error: %v", err)
	}
	if info.Algorithm != "HS256" {
		t.Errorf("Algorithm = %q, want HS256", info.Algorithm)
	}
	if info.UserID != "user-9" || info.Subject != "user-9" {
		t.Errorf("UserID/Subject = %q/%q, want user-9", info.UserID, info.Subject)
	}
	if info.ExpiresAt == nil {
		t.Fatal("ExpiresAt not set")
	}
	if info.Expired {
		t.Error("fresh token reported as expired")
	}
}

func TestInspectTokenOpaque(t *testing.T) {
	_, err := InspectToken("dummy_token_12345")
	if !errors.Is(err, ErrNotJWT) {
		t.Errorf("InspectToken() error = %v, want ErrNotJWT", err)
	}
}

func signClaims(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return s
}
