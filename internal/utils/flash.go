package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FlashClaims carries pending notices between a write and the page the
// user is redirected to.
type FlashClaims struct {
	Messages []string `json:"msgs"`
	jwt.RegisteredClaims
}

// NewFlashToken signs messages into an HS256 token that expires after ttl.
func NewFlashToken(secret []byte, messages []string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := FlashClaims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// ParseFlashToken verifies a token produced by NewFlashToken and returns
// its messages.  Expired or tampered tokens yield an error.
func ParseFlashToken(secret []byte, raw string) ([]string, error) {
	var claims FlashClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid flash token")
	}
	return claims.Messages, nil
}
