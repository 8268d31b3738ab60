// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"errors"

	"aquashop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenExpired is returned when a token's embedded expiry has passed.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid is returned when a token is malformed or its signature
// does not validate.
var ErrTokenInvalid = errors.New("token invalid")

// Claims is the set of identity facts embedded in a signed access token.
type Claims struct {
	UserID   uuid.UUID
	Username string
	Role     entity.Role
}

// TokenService defines the interface for issuing and verifying access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-limited access token for a user.
	Generate(userID uuid.UUID, username string, role entity.Role) (string, error)

	// Validate checks a token string and returns its claims.
	// It fails with ErrTokenExpired or ErrTokenInvalid.
	Validate(tokenString string) (*Claims, error)
}
