package store

import (
	"context"

	"github.com/davrell/storefront-api/internal/domain"
)

// OrderStore defines the interface for order persistence. Orders are
// immutable once created, so there is no update or delete.
type OrderStore interface {
	// Create saves a new order snapshot, including its item copies.
	Create(ctx context.Context, order *domain.Order) error

	// GetByUsername returns a user's order history, newest first.
	// Returns an empty slice when the user has no orders.
	GetByUsername(ctx context.Context, username string) ([]domain.Order, error)
}
