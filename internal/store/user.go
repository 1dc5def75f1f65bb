// Package store defines the persistence interfaces consumed by the
// service and API layers. Implementations live under platform packages
// (e.g., internal/platform/postgres) and are injected at startup.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/davrell/storefront-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// HashedPassword; the plaintext Password field is ignored.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
