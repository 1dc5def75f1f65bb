package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/davrell/storefront-api/internal/domain"
	"github.com/davrell/storefront-api/internal/store"
)

// PostgresOrderStore implements the store.OrderStore interface
// using a PostgreSQL database as the storage backend.
//
// order_items copies each item's name, price and description at
// submission time, so the stored order stays a faithful snapshot even if
// the catalog row changes later.
type PostgresOrderStore struct {
	db *sql.DB
}

// Ensure PostgresOrderStore implements store.OrderStore interface
var _ store.OrderStore = (*PostgresOrderStore)(nil)

// NewPostgresOrderStore creates a new PostgreSQL implementation of the
// OrderStore interface.
func NewPostgresOrderStore(db *sql.DB) *PostgresOrderStore {
	return &PostgresOrderStore{db: db}
}

// Create implements store.OrderStore.Create
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO orders (id, username, total_cents, created_at)
		 VALUES ($1, $2, $3, $4)`,
		order.ID, order.Username, order.TotalCents, order.CreatedAt); err != nil {
		return fmt.Errorf("failed to create order: %w", MapError(err))
	}

	for position, item := range order.Items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, item_id, name, price_cents, description, position)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, item.ID, item.Name, item.PriceCents, item.Description, position); err != nil {
			return fmt.Errorf("failed to create order item: %w", MapError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// GetByUsername implements store.OrderStore.GetByUsername
func (s *PostgresOrderStore) GetByUsername(
	ctx context.Context,
	username string,
) ([]domain.Order, error) {
	ordersQuery := `
		SELECT id, username, total_cents, created_at
		FROM orders
		WHERE username = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, ordersQuery, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Username, &order.TotalCents, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", MapError(err))
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", MapError(err))
	}

	for i := range orders {
		items, err := s.getOrderItems(ctx, orders[i])
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// getOrderItems loads the snapshotted item copies for one order.
func (s *PostgresOrderStore) getOrderItems(
	ctx context.Context,
	order domain.Order,
) ([]domain.Item, error) {
	itemsQuery := `
		SELECT item_id, name, price_cents, description
		FROM order_items
		WHERE order_id = $1
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, itemsQuery, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	return scanItems(rows)
}
