package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/davrell/storefront-api/internal/domain"
	"github.com/davrell/storefront-api/internal/store"
)

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db store.DBTX
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

// NewPostgresItemStore creates a new PostgreSQL implementation of the
// ItemStore interface.
func NewPostgresItemStore(db store.DBTX) *PostgresItemStore {
	return &PostgresItemStore{db: db}
}

// GetAll implements store.ItemStore.GetAll
func (s *PostgresItemStore) GetAll(ctx context.Context) ([]domain.Item, error) {
	query := `
		SELECT id, name, price_cents, description
		FROM items
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	return scanItems(rows)
}

// GetByID implements store.ItemStore.GetByID
func (s *PostgresItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `
		SELECT id, name, price_cents, description
		FROM items
		WHERE id = $1`

	var item domain.Item
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.Name, &item.PriceCents, &item.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", MapError(err))
	}

	return &item, nil
}

// GetByName implements store.ItemStore.GetByName
func (s *PostgresItemStore) GetByName(ctx context.Context, name string) ([]domain.Item, error) {
	query := `
		SELECT id, name, price_cents, description
		FROM items
		WHERE name = $1`

	rows, err := s.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get items by name: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, store.ErrItemNotFound
	}

	return items, nil
}

// scanItems maps item rows into domain items.
func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	items := []domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.PriceCents, &item.Description); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", MapError(err))
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", MapError(err))
	}
	return items, nil
}
