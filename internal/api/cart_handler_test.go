package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/storefront-api/internal/domain"
)

// cartFixture wires a handler around a registered user with an empty
// cart and a two-item catalog.
type cartFixture struct {
	handler *CartHandler
	carts   *mockCartStore
	round   domain.Item
	square  domain.Item
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	users := newMockUserStore()
	require.NoError(t, users.Create(context.Background(), &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: "hash",
	}))

	round := domain.Item{ID: uuid.New(), Name: "Round Widget", PriceCents: 299}
	square := domain.Item{ID: uuid.New(), Name: "Square Widget", PriceCents: 199}
	items := &mockItemStore{items: []domain.Item{round, square}}

	carts := newMockCartStore()
	require.NoError(t, carts.Create(context.Background(), domain.NewCart("alice")))

	return &cartFixture{
		handler: NewCartHandler(users, items, carts),
		carts:   carts,
		round:   round,
		square:  square,
	}
}

func (f *cartFixture) storedCart(t *testing.T) *domain.Cart {
	t.Helper()
	cart, err := f.carts.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	return cart
}

func TestAddToCart(t *testing.T) {
	t.Parallel()

	t.Run("adds the requested quantity and totals it", func(t *testing.T) {
		t.Parallel()

		f := newCartFixture(t)

		rec := postJSON(t, f.handler.AddToCart, "/api/cart/addToCart", ModifyCartRequest{
			Username: "alice",
			ItemID:   f.round.ID,
			Quantity: 3,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp domain.Cart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 3)
		assert.Equal(t, int64(897), resp.TotalCents)

		stored := f.storedCart(t)
		assert.Len(t, stored.Items, 3)
		assert.Equal(t, int64(897), stored.TotalCents)
	})

	t.Run("unknown item yields 404 and leaves the cart empty", func(t *testing.T) {
		t.Parallel()

		f := newCartFixture(t)

		rec := postJSON(t, f.handler.AddToCart, "/api/cart/addToCart", ModifyCartRequest{
			Username: "alice",
			ItemID:   uuid.New(),
			Quantity: 1,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, f.storedCart(t).Items)
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		t.Parallel()

		f := newCartFixture(t)

		rec := postJSON(t, f.handler.AddToCart, "/api/cart/addToCart", ModifyCartRequest{
			Username: "mallory",
			ItemID:   f.round.ID,
			Quantity: 1,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("zero quantity yields 400", func(t *testing.T) {
		t.Parallel()

		f := newCartFixture(t)

		rec := postJSON(t, f.handler.AddToCart, "/api/cart/addToCart", ModifyCartRequest{
			Username: "alice",
			ItemID:   f.round.ID,
			Quantity: 0,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRemoveFromCart(t *testing.T) {
	t.Parallel()

	addUnits := func(t *testing.T, f *cartFixture, item domain.Item, quantity int) {
		t.Helper()
		rec := postJSON(t, f.handler.AddToCart, "/api/cart/addToCart", ModifyCartRequest{
			Username: "alice",
			ItemID:   item.ID,
			Quantity: quantity,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	t.Run("removes units and shrinks the total", func(t *testing.T) {
		t.Parallel()

		f := newCartFixture(t)
		addUnits(t, f, f.round, 3)

		rec := postJSON(t, f.handler.RemoveFromCart, "/api/cart/removeFromCart", ModifyCartRequest{
			Username: "alice",
			ItemID:   f.round.ID,
			Quantity: 1,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp domain.Cart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 2)
		assert.Equal(t, int64(598), resp.TotalCents)
	})

	t.Run("removing an absent item yields 400 and saves nothing", func(t *testing.T) {
		t.Parallel()

		f := newCartFixture(t)
		addUnits(t, f, f.round, 1)

		rec := postJSON(t, f.handler.RemoveFromCart, "/api/cart/removeFromCart", ModifyCartRequest{
			Username: "alice",
			ItemID:   f.square.ID,
			Quantity: 1,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Item not in cart")

		stored := f.storedCart(t)
		assert.Len(t, stored.Items, 1)
		assert.Equal(t, int64(299), stored.TotalCents)
	})

	t.Run("removing more units than present yields 400 and saves nothing", func(t *testing.T) {
		t.Parallel()

		f := newCartFixture(t)
		addUnits(t, f, f.round, 2)

		rec := postJSON(t, f.handler.RemoveFromCart, "/api/cart/removeFromCart", ModifyCartRequest{
			Username: "alice",
			ItemID:   f.round.ID,
			Quantity: 3,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		stored := f.storedCart(t)
		assert.Len(t, stored.Items, 2)
		assert.Equal(t, int64(598), stored.TotalCents)
	})
}
