package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/davrell/storefront-api/internal/domain"
)

// ItemStore defines read access to the item catalog. Items are reference
// data: the API never creates or mutates them, so the interface exposes
// lookups only.
type ItemStore interface {
	// GetAll returns every item in the catalog.
	GetAll(ctx context.Context) ([]domain.Item, error)

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// GetByName returns all items with the given name.
	// Returns ErrItemNotFound if no item matches.
	GetByName(ctx context.Context, name string) ([]domain.Item, error)
}
