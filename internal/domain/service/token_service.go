package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims carried by a trip session token.
type Claims struct {
	OwnerID string `json:"owner_id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates session tokens.
type TokenService interface {
	// GenerateToken creates a signed access token for the owner.
	GenerateToken(ownerID string) (token string, expiresAt time.Time, err error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
