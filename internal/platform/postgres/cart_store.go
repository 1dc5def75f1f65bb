package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/davrell/storefront-api/internal/domain"
	"github.com/davrell/storefront-api/internal/store"
)

// PostgresCartStore implements the store.CartStore interface
// using a PostgreSQL database as the storage backend.
//
// The cart's item sequence lives in cart_items; Save replaces the stored
// sequence transactionally so the persisted total and items can never be
// updated independently of each other.
type PostgresCartStore struct {
	db *sql.DB
}

// Ensure PostgresCartStore implements store.CartStore interface
var _ store.CartStore = (*PostgresCartStore)(nil)

// NewPostgresCartStore creates a new PostgreSQL implementation of the
// CartStore interface.
func NewPostgresCartStore(db *sql.DB) *PostgresCartStore {
	return &PostgresCartStore{db: db}
}

// Create implements store.CartStore.Create
func (s *PostgresCartStore) Create(ctx context.Context, cart *domain.Cart) error {
	query := `
		INSERT INTO carts (id, username, total_cents)
		VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, cart.ID, cart.Username, cart.TotalCents)
	if err != nil {
		return fmt.Errorf("failed to create cart: %w", MapError(err))
	}

	return nil
}

// GetByUsername implements store.CartStore.GetByUsername. The returned
// cart's total is recomputed from the loaded items rather than trusted
// from the stored column.
func (s *PostgresCartStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.Cart, error) {
	cartQuery := `
		SELECT id, username
		FROM carts
		WHERE username = $1`

	var cart domain.Cart
	err := s.db.QueryRowContext(ctx, cartQuery, username).Scan(&cart.ID, &cart.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", MapError(err))
	}

	itemsQuery := `
		SELECT i.id, i.name, i.price_cents, i.description
		FROM cart_items ci
		JOIN items i ON i.id = ci.item_id
		WHERE ci.cart_id = $1
		ORDER BY ci.position`

	rows, err := s.db.QueryContext(ctx, itemsQuery, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	cart.Items, err = scanItems(rows)
	if err != nil {
		return nil, err
	}
	cart.TotalCents = cart.ComputeTotalCents()

	return &cart, nil
}

// Save implements store.CartStore.Save. The item sequence and the total
// are written in one transaction.
func (s *PostgresCartStore) Save(ctx context.Context, cart *domain.Cart) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`UPDATE carts SET total_cents = $2 WHERE id = $1`,
		cart.ID, cart.TotalCents)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", MapError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cart update: %w", err)
	}
	if affected == 0 {
		return store.ErrCartNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1`, cart.ID); err != nil {
		return fmt.Errorf("failed to clear cart items: %w", MapError(err))
	}

	for position, item := range cart.Items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cart_items (cart_id, item_id, position) VALUES ($1, $2, $3)`,
			cart.ID, item.ID, position); err != nil {
			return fmt.Errorf("failed to save cart item: %w", MapError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cart save: %w", err)
	}

	return nil
}
