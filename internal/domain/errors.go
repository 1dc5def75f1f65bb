// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyUsername is returned when a username is missing.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrPasswordTooShort is returned when a password is below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 7 characters long")

	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("password and confirmation do not match")

	// ErrEmptyHashedPassword is returned when a stored user has no password hash.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")

	// ErrItemNotInCart is returned when removing an item that has no
	// occurrence in the cart. Removal must fail visibly rather than
	// silently no-op, otherwise the cart total could drift from the items.
	ErrItemNotInCart = errors.New("item not in cart")

	// ErrInvalidPrice is returned when an item carries a negative price.
	ErrInvalidPrice = errors.New("item price cannot be negative")
)
