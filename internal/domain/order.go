package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable point-in-time snapshot of a cart taken at
// submission. Once created it has no relationship to the live cart; the
// cart may be mutated afterwards without affecting the order.
type Order struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Items      []Item    `json:"items"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewOrderFromCart produces an order capturing the cart's items and total
// at this instant. The item slice is copied so later cart mutation cannot
// reach into the order. The total is recomputed from the copied items
// rather than trusted from the cart.
func NewOrderFromCart(cart *Cart) *Order {
	items := make([]Item, len(cart.Items))
	copy(items, cart.Items)

	order := &Order{
		ID:        uuid.New(),
		Username:  cart.Username,
		Items:     items,
		CreatedAt: time.Now().UTC(),
	}
	for _, item := range items {
		order.TotalCents += item.PriceCents
	}
	return order
}
