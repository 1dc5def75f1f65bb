package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davrell/storefront-api/internal/api/shared"
	"github.com/davrell/storefront-api/internal/domain"
	"github.com/davrell/storefront-api/internal/platform/logger"
	"github.com/davrell/storefront-api/internal/store"
)

// OrderHandler handles order submission and history endpoints.
type OrderHandler struct {
	users  store.UserStore
	carts  store.CartStore
	orders store.OrderStore
}

// NewOrderHandler creates a new OrderHandler with the given dependencies.
func NewOrderHandler(
	users store.UserStore,
	carts store.CartStore,
	orders store.OrderStore,
) *OrderHandler {
	return &OrderHandler{
		users:  users,
		carts:  carts,
		orders: orders,
	}
}

// Submit handles POST /api/order/submit/{username}. It snapshots the
// user's cart into a new immutable order. The live cart is untouched;
// mutating it afterwards has no effect on the persisted order.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	username := chi.URLParam(r, "username")

	if _, err := h.users.GetByUsername(r.Context(), username); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	cart, err := h.carts.GetByUsername(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	order := domain.NewOrderFromCart(cart)
	if err := h.orders.Create(r.Context(), order); err != nil {
		log.Error("failed to save order", "error", err, "username", username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to submit order")
		return
	}

	log.Info("order submitted",
		"username", username,
		"order_id", order.ID,
		"total_cents", order.TotalCents,
		"item_count", len(order.Items))

	shared.RespondWithJSON(w, r, http.StatusOK, order)
}

// History handles GET /api/order/history/{username}.
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if _, err := h.users.GetByUsername(r.Context(), username); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	orders, err := h.orders.GetByUsername(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load order history")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, orders)
}
