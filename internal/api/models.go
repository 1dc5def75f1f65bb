package api

import "github.com/google/uuid"

// Common request/response structures

// CreateUserRequest defines the payload for the user creation endpoint.
// The password must be confirmed; handler-level validation additionally
// enforces the minimum length and the match between the two fields.
type CreateUserRequest struct {
	Username        string `json:"username"         validate:"required"`
	Password        string `json:"password"         validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for the login endpoint.
// The same token is also emitted in the Authorization response header.
type AuthResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// ModifyCartRequest defines the payload for the add-to-cart and
// remove-from-cart endpoints. Quantity is the number of units to add or
// remove and must be at least one.
type ModifyCartRequest struct {
	Username string    `json:"username" validate:"required"`
	ItemID   uuid.UUID `json:"item_id"  validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}
