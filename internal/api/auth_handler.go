// Package api implements the HTTP handlers for the storefront endpoints:
// authentication, users, the item catalog, carts, and orders.
package api

import (
	"errors"
	"net/http"

	"github.com/davrell/storefront-api/internal/api/shared"
	"github.com/davrell/storefront-api/internal/platform/logger"
	"github.com/davrell/storefront-api/internal/service/auth"
)

// AuthHandler handles the login endpoint. It is the only place in the
// system where tokens are minted.
type AuthHandler struct {
	credentials auth.CredentialVerifier
	tokens      auth.TokenService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(credentials auth.CredentialVerifier, tokens auth.TokenService) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		tokens:      tokens,
	}
}

// Login handles POST /login. On success the minted token is emitted both
// as an `Authorization: Bearer <token>` response header and in the JSON
// body. Unknown user and wrong password produce the same rejection.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	subject, err := h.credentials.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	token, err := h.tokens.GenerateToken(r.Context(), subject)
	if err != nil {
		log.Error("failed to generate token", "error", err, "username", subject)
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	log.Info("user logged in", "username", subject)

	w.Header().Set("Authorization", "Bearer "+token)
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Username: subject,
		Token:    token,
	})
}
