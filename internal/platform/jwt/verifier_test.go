package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// createTokenWithSecret builds an HS256 token for tests. A negative
// expiration yields an already-expired token.
func createTokenWithSecret(secret string, userID uint, expiration time.Duration) string {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(expiration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(secret))
	return signed
}

// TestVerifier_RoundTrip verifies that a freshly issued token resolves to
// exactly the user it was issued for.
func TestVerifier_RoundTrip(t *testing.T) {
	t.Parallel()

	const secret = "round-trip-secret"
	gen := NewGenerator(secret, time.Hour)
	v := NewVerifier(secret)

	tests := []struct {
		name   string
		userID uint
	}{
		{"user id 1", 1},
		{"user id 42", 42},
		{"large user id", 999999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			signed, err := gen.GenerateToken(tt.userID, "user@example.com")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := v.Verify(signed)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.userID {
				t.Errorf("expected user id %d, got %d", tt.userID, got)
			}
		})
	}
}

// TestVerifier_InvalidTokens verifies that every rejection reason surfaces
// as the same ErrInvalidToken, with no distinguishable error kinds.
func TestVerifier_InvalidTokens(t *testing.T) {
	t.Parallel()

	const secret = "verify-secret"
	v := NewVerifier(secret)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"empty string", ""},
		{"wrong secret", createTokenWithSecret("wrong-secret", 1, time.Hour)},
		{"expired token", createTokenWithSecret(secret, 1, -time.Hour)},
		{"non-HMAC algorithm", unsignedNoneToken()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := v.Verify(tt.token)
			if err == nil {
				t.Fatal("expected error but got nil")
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got: %v", err)
			}
		})
	}
}

// unsignedNoneToken builds a token using the "none" algorithm, which the
// verifier must reject regardless of its claims.
func unsignedNoneToken() string {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	return signed
}

// TestVerifier_MissingSubject verifies that a structurally valid token
// without a numeric subject is rejected.
func TestVerifier_MissingSubject(t *testing.T) {
	t.Parallel()

	const secret = "verify-secret"
	v := NewVerifier(secret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = v.Verify(signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got: %v", err)
	}
}
