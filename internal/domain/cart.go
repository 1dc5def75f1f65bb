package domain

import (
	"github.com/google/uuid"
)

// Cart holds a user's pending purchases. Each user owns exactly one cart,
// created when the user registers.
//
// Invariant: TotalCents always equals the sum of PriceCents over Items.
// The total is never set directly by callers; AddItem and RemoveItem are
// the only mutation paths and each updates the item slice and the total
// together. Callers must not interleave mutations of the same cart from
// concurrent requests (single writer per cart).
type Cart struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Items      []Item    `json:"items"`
	TotalCents int64     `json:"total_cents"`
}

// NewCart creates an empty cart owned by the given user.
func NewCart(username string) *Cart {
	return &Cart{
		ID:       uuid.New(),
		Username: username,
		Items:    []Item{},
	}
}

// AddItem appends one unit of the item to the cart and adds its price to
// the running total. Adding the same item N times appends N entries and
// increases the total by N times the price.
func (c *Cart) AddItem(item Item) {
	c.Items = append(c.Items, item)
	c.TotalCents += item.PriceCents
}

// RemoveItem removes exactly one occurrence of the item (matched by ID)
// and subtracts its price from the total. Returns ErrItemNotInCart if the
// item has no occurrence in the cart; the cart is left unchanged in that
// case. When duplicates exist, the first occurrence is removed.
func (c *Cart) RemoveItem(item Item) error {
	for i, entry := range c.Items {
		if entry.ID == item.ID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.TotalCents -= entry.PriceCents
			return nil
		}
	}
	return ErrItemNotInCart
}

// ComputeTotalCents recomputes the total from the item slice. Stores use
// this after loading a cart so a persisted total can never drift from the
// persisted items.
func (c *Cart) ComputeTotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents
	}
	return total
}
