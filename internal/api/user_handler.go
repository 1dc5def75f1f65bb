package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/davrell/storefront-api/internal/api/shared"
	"github.com/davrell/storefront-api/internal/domain"
	"github.com/davrell/storefront-api/internal/platform/logger"
	"github.com/davrell/storefront-api/internal/service/auth"
	"github.com/davrell/storefront-api/internal/store"
)

// UserHandler handles user creation and lookup endpoints.
type UserHandler struct {
	users store.UserStore
	carts store.CartStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(users store.UserStore, carts store.CartStore) *UserHandler {
	return &UserHandler{
		users: users,
		carts: carts,
	}
}

// Create handles POST /api/user/create. It validates the password rules,
// hashes the password, stores the user, and creates the user's cart. Each
// user owns exactly one cart for their lifetime.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := domain.NewUser(req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		log.Debug("rejected user creation", "error", err, "username", req.Username)
		HandleAPIError(w, r, err, "")
		return
	}

	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		log.Error("failed to create user", "error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	if err := h.carts.Create(r.Context(), domain.NewCart(user.Username)); err != nil {
		log.Error("failed to create cart for user", "error", err, "username", user.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	log.Info("user created", "username", user.Username)
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// GetByUsername handles GET /api/user/{username}.
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// GetByID handles GET /api/user/id/{id}.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}
