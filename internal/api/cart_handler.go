package api

import (
	"errors"
	"net/http"

	"github.com/davrell/storefront-api/internal/api/shared"
	"github.com/davrell/storefront-api/internal/domain"
	"github.com/davrell/storefront-api/internal/platform/logger"
	"github.com/davrell/storefront-api/internal/store"
)

// CartHandler handles cart mutation endpoints. Each mutation is a
// load-mutate-save of the caller's cart; the single-writer-per-cart
// discipline (one active mutation per user at a time) is assumed.
type CartHandler struct {
	users store.UserStore
	items store.ItemStore
	carts store.CartStore
}

// NewCartHandler creates a new CartHandler with the given dependencies.
func NewCartHandler(
	users store.UserStore,
	items store.ItemStore,
	carts store.CartStore,
) *CartHandler {
	return &CartHandler{
		users: users,
		items: items,
		carts: carts,
	}
}

// decodeModifyRequest parses and validates the shared add/remove payload.
// Returns false after writing the error response when the payload is bad.
func (h *CartHandler) decodeModifyRequest(
	w http.ResponseWriter,
	r *http.Request,
) (*ModifyCartRequest, bool) {
	var req ModifyCartRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}
	return &req, true
}

// resolveCartAndItem looks up the user's cart and the requested item.
// Returns false after writing the error response when either is missing.
func (h *CartHandler) resolveCartAndItem(
	w http.ResponseWriter,
	r *http.Request,
	req *ModifyCartRequest,
) (*domain.Cart, *domain.Item, bool) {
	if _, err := h.users.GetByUsername(r.Context(), req.Username); err != nil {
		HandleAPIError(w, r, err, "")
		return nil, nil, false
	}

	item, err := h.items.GetByID(r.Context(), req.ItemID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, nil, false
	}

	cart, err := h.carts.GetByUsername(r.Context(), req.Username)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, nil, false
	}

	return cart, item, true
}

// AddToCart handles POST /api/cart/addToCart. The requested quantity of
// the item is appended to the cart; the cart total follows in lock-step.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	req, ok := h.decodeModifyRequest(w, r)
	if !ok {
		return
	}
	cart, item, ok := h.resolveCartAndItem(w, r, req)
	if !ok {
		return
	}

	for i := 0; i < req.Quantity; i++ {
		cart.AddItem(*item)
	}

	if err := h.carts.Save(r.Context(), cart); err != nil {
		log.Error("failed to save cart", "error", err, "username", cart.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	log.Info("added to cart",
		"username", cart.Username,
		"item_id", item.ID,
		"quantity", req.Quantity,
		"total_cents", cart.TotalCents)

	shared.RespondWithJSON(w, r, http.StatusOK, cart)
}

// RemoveFromCart handles POST /api/cart/removeFromCart. Removing an item
// with no occurrence in the cart fails visibly with a 400 rather than
// silently no-opping, so the total can never drift. The cart is only
// saved when every requested removal succeeded.
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	req, ok := h.decodeModifyRequest(w, r)
	if !ok {
		return
	}
	cart, item, ok := h.resolveCartAndItem(w, r, req)
	if !ok {
		return
	}

	for i := 0; i < req.Quantity; i++ {
		if err := cart.RemoveItem(*item); err != nil {
			if errors.Is(err, domain.ErrItemNotInCart) {
				HandleAPIError(w, r, err, "")
				return
			}
			HandleAPIError(w, r, err, "Failed to update cart")
			return
		}
	}

	if err := h.carts.Save(r.Context(), cart); err != nil {
		log.Error("failed to save cart", "error", err, "username", cart.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	log.Info("removed from cart",
		"username", cart.Username,
		"item_id", item.ID,
		"quantity", req.Quantity,
		"total_cents", cart.TotalCents)

	shared.RespondWithJSON(w, r, http.StatusOK, cart)
}
