package store

import (
	"context"

	"github.com/davrell/storefront-api/internal/domain"
)

// CartStore defines the interface for cart persistence. A cart is keyed
// by its owning username; there is exactly one cart per user.
type CartStore interface {
	// Create saves a new, typically empty, cart for a user.
	// Returns ErrDuplicate if the user already has a cart.
	Create(ctx context.Context, cart *domain.Cart) error

	// GetByUsername retrieves a user's cart, including its items.
	// Returns ErrCartNotFound if the user has no cart.
	GetByUsername(ctx context.Context, username string) (*domain.Cart, error)

	// Save persists the cart's current items and total, replacing the
	// previously stored contents. Returns ErrCartNotFound if the cart
	// does not exist.
	Save(ctx context.Context, cart *domain.Cart) error
}
