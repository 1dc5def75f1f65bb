package api

import (
	"errors"
	"net/http"

	"github.com/davrell/storefront-api/internal/api/shared"
	"github.com/davrell/storefront-api/internal/domain"
	"github.com/davrell/storefront-api/internal/service/auth"
	"github.com/davrell/storefront-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrItemNotInCart),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyUsername),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		// Unknown user and wrong password share one message.
		return "Invalid credentials"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrItemNotFound):
		return "Item not found"

	case errors.Is(err, store.ErrCartNotFound):
		return "Cart not found"

	case errors.Is(err, store.ErrOrderNotFound):
		return "Order not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, domain.ErrItemNotInCart):
		return "Item not in cart"

	case errors.Is(err, domain.ErrPasswordTooShort):
		return "Password must be at least 7 characters long"

	case errors.Is(err, domain.ErrPasswordMismatch):
		return "Password and confirmation do not match"

	case errors.Is(err, domain.ErrEmptyUsername):
		return "Username is required"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes an error response using the status and message
// mappings above. An empty userMessage falls back to the safe message for
// the error type.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
