package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 7

// User represents a registered user of the storefront.
// The plaintext Password field is only populated transiently during
// registration; stores persist HashedPassword and never the plaintext.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext, used only during registration
	HashedPassword string    `json:"-"` // Never exposed in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given username and password.
// It generates a new UUID for the user ID and sets the creation timestamp.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(username, password, confirmPassword string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.validateRegistration(confirmPassword); err != nil {
		return nil, err
	}

	return user, nil
}

// validateRegistration checks the fields supplied at registration time.
func (u *User) validateRegistration(confirmPassword string) error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if u.Password != confirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// Validate checks if a stored User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}
