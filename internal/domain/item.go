package domain

import "github.com/google/uuid"

// Item is immutable reference data describing a purchasable product.
// Carts and orders hold value copies of items; nothing mutates an item
// after it is loaded from the catalog.
//
// Prices are integer cents to keep cart arithmetic exact.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
}

// Validate checks if the Item has valid data.
func (i *Item) Validate() error {
	if i.PriceCents < 0 {
		return ErrInvalidPrice
	}
	return nil
}
