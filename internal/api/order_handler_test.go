package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/storefront-api/internal/domain"
)

type orderFixture struct {
	handler *OrderHandler
	carts   *mockCartStore
	orders  *mockOrderStore
}

func newOrderFixture(t *testing.T, cartItems ...domain.Item) *orderFixture {
	t.Helper()

	users := newMockUserStore()
	require.NoError(t, users.Create(context.Background(), &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: "hash",
	}))

	cart := domain.NewCart("alice")
	for _, item := range cartItems {
		cart.AddItem(item)
	}
	carts := newMockCartStore()
	require.NoError(t, carts.Create(context.Background(), cart))

	orders := newMockOrderStore()
	return &orderFixture{
		handler: NewOrderHandler(users, carts, orders),
		carts:   carts,
		orders:  orders,
	}
}

func submitOrder(t *testing.T, f *orderFixture, username string) *httptest.ResponseRecorder {
	t.Helper()
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/order/submit/"+username, nil),
		"username", username)
	rec := httptest.NewRecorder()
	f.handler.Submit(rec, req)
	return rec
}

func TestOrderSubmit(t *testing.T) {
	t.Parallel()

	round := domain.Item{ID: uuid.New(), Name: "Round Widget", PriceCents: 299}

	t.Run("snapshots the cart into an order", func(t *testing.T) {
		t.Parallel()

		f := newOrderFixture(t, round, round)

		rec := submitOrder(t, f, "alice")
		require.Equal(t, http.StatusOK, rec.Code)

		var order domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
		assert.Equal(t, "alice", order.Username)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, int64(598), order.TotalCents)
	})

	t.Run("submission leaves the live cart untouched", func(t *testing.T) {
		t.Parallel()

		f := newOrderFixture(t, round)

		rec := submitOrder(t, f, "alice")
		require.Equal(t, http.StatusOK, rec.Code)

		cart, err := f.carts.GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, int64(299), cart.TotalCents)
	})

	t.Run("cart mutation after submission does not alter the order", func(t *testing.T) {
		t.Parallel()

		f := newOrderFixture(t, round)

		rec := submitOrder(t, f, "alice")
		require.Equal(t, http.StatusOK, rec.Code)

		// Empty the cart after the order is placed.
		cart, err := f.carts.GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		require.NoError(t, cart.RemoveItem(round))
		require.NoError(t, f.carts.Save(context.Background(), cart))

		history, err := f.orders.GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Len(t, history[0].Items, 1)
		assert.Equal(t, int64(299), history[0].TotalCents)
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		t.Parallel()

		f := newOrderFixture(t)

		rec := submitOrder(t, f, "mallory")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty cart still submits an empty order", func(t *testing.T) {
		t.Parallel()

		f := newOrderFixture(t)

		rec := submitOrder(t, f, "alice")
		require.Equal(t, http.StatusOK, rec.Code)

		var order domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
		assert.Empty(t, order.Items)
		assert.Zero(t, order.TotalCents)
	})
}

func TestOrderHistory(t *testing.T) {
	t.Parallel()

	round := domain.Item{ID: uuid.New(), Name: "Round Widget", PriceCents: 299}

	t.Run("returns submitted orders newest first", func(t *testing.T) {
		t.Parallel()

		f := newOrderFixture(t, round)

		first := submitOrder(t, f, "alice")
		require.Equal(t, http.StatusOK, first.Code)
		second := submitOrder(t, f, "alice")
		require.Equal(t, http.StatusOK, second.Code)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/order/history/alice", nil),
			"username", "alice")
		rec := httptest.NewRecorder()
		f.handler.History(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var history []domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
		assert.Len(t, history, 2)
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		t.Parallel()

		f := newOrderFixture(t)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/order/history/mallory", nil),
			"username", "mallory")
		rec := httptest.NewRecorder()
		f.handler.History(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
