package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/davrell/storefront-api/internal/api/shared"
	"github.com/davrell/storefront-api/internal/store"
)

// ItemHandler handles read-only item catalog endpoints.
type ItemHandler struct {
	items store.ItemStore
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
func NewItemHandler(items store.ItemStore) *ItemHandler {
	return &ItemHandler{items: items}
}

// List handles GET /api/item.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list items")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// GetByID handles GET /api/item/{id}.
func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.items.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// GetByName handles GET /api/item/name/{name}.
func (h *ItemHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	items, err := h.items.GetByName(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}
