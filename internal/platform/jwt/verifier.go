package jwtmw

import (
	"errors"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single externally visible verification failure.
// Expired, tampered and malformed tokens are deliberately indistinguishable
// to callers; only logs tell them apart.
var ErrInvalidToken = errors.New("invalid token")

// Verifier resolves a bearer token to the user ID it was issued for.
type Verifier interface {
	// Verify returns the subject user ID of a valid token.
	Verify(tokenStr string) (uint, error)
}

// verifier implements the Verifier interface.
type verifier struct {
	secret []byte
}

// NewVerifier creates a new JWT verifier with the provided secret.
func NewVerifier(secret string) Verifier {
	return &verifier{secret: []byte(secret)}
}

// Verify parses and validates the token, returning its subject user ID.
func (v *verifier) Verify(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			slog.Debug("token rejected: expired")
		} else {
			slog.Debug("token rejected", "error", err)
		}
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, ErrInvalidToken
	}
	return uint(sub), nil
}
