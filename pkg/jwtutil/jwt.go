package jwtutil

import (
	"errors"

	"gym-service/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

var signingKey []byte

// ErrNotInitialized is returned when token validation is attempted before
// the signing key has been configured.
var ErrNotInitialized = errors.New("jwtutil: signing key not initialized")

// UserClaims represents the claims carried by tokens issued by the external
// identity provider. This service only ever verifies tokens, it never mints
// them.
type UserClaims struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Initialize configures the verification key from the application config
func Initialize(cfg *config.JWTConfig) {
	signingKey = []byte(cfg.SigningKey)
}

// ValidateToken validates and parses the bearer token
func ValidateToken(tokenString string) (*UserClaims, error) {
	if len(signingKey) == 0 {
		return nil, ErrNotInitialized
	}

	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
