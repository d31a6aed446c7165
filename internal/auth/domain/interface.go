package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/pablozoani/gl-exercise/internal/auth/domain UserRepository

type UserRepository interface {
	// GetByEmail returns the user with the given email, phones included,
	// or (nil, nil) when no such user exists.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts the user and its phones in one transaction. A write
	// rejected by the email uniqueness constraint is reported as
	// errors.ErrEmailAlreadyInUse.
	Create(ctx context.Context, user *User) error

	// UpdateLastLogin persists a new last-login timestamp for the user.
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
