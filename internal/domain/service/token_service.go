package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the session tokens used to gate the
// role-restricted dashboards. Authentication itself is mocked; the tokens are
// real so the delivery layer can do stateless role checks.
type TokenService interface {
	// GenerateToken creates a signed access token for a user and role.
	GenerateToken(userID string, role string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
