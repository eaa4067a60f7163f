package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the access token claims the API relies on.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access JWTs.
// Tokens are issued by the identity provider in production; GenerateAccessToken
// exists for development tooling and tests.
type TokenService interface {
	// GenerateAccessToken signs an access token for a user.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the lifetime of issued access tokens.
	AccessTokenTTL() time.Duration
}
