package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput defines the data required to register.
type RegisterInput struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role"`
}

// SessionOutput returns the session user and its access token.
type SessionOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// AuthUsecase is the mocked authentication boundary. It manages the single
// persisted session user; role checks on dashboards are its only consumer.
type AuthUsecase interface {
	// Register creates the session user, stores a password hash and issues
	// an access token.
	Register(ctx context.Context, input RegisterInput) (*SessionOutput, error)

	// Login verifies credentials against the stored user when one matches
	// the email, otherwise fabricates a session user (mock behavior), and
	// issues an access token either way.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Logout removes the session user.
	Logout(ctx context.Context) error

	// CurrentUser returns the session user, or an error when logged out.
	CurrentUser(ctx context.Context) (*entity.User, error)
}
