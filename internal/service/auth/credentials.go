package auth

import (
	"context"
	"errors"

	"github.com/davrell/storefront-api/internal/platform/logger"
	"github.com/davrell/storefront-api/internal/store"
)

// CredentialVerifier checks a username/password pair against stored
// credentials and, on success, yields the canonical subject identity.
type CredentialVerifier interface {
	// Verify returns the canonical username for the credentials, or
	// ErrInvalidCredentials when the user is unknown or the password is
	// wrong. The two cases are indistinguishable to the caller.
	Verify(ctx context.Context, username, password string) (string, error)
}

// storeCredentialVerifier verifies credentials against a UserStore using
// a PasswordVerifier for the hash comparison.
type storeCredentialVerifier struct {
	users     store.UserStore
	passwords PasswordVerifier
}

var _ CredentialVerifier = (*storeCredentialVerifier)(nil)

// NewCredentialVerifier creates a CredentialVerifier backed by the given
// user store and password verifier.
func NewCredentialVerifier(users store.UserStore, passwords PasswordVerifier) CredentialVerifier {
	return &storeCredentialVerifier{
		users:     users,
		passwords: passwords,
	}
}

// Verify implements CredentialVerifier.
func (v *storeCredentialVerifier) Verify(
	ctx context.Context,
	username, password string,
) (string, error) {
	log := logger.FromContext(ctx)

	user, err := v.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("credential verification failed: unknown user")
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := v.passwords.Compare(user.HashedPassword, password); err != nil {
		log.Debug("credential verification failed: password mismatch",
			"username", user.Username)
		return "", ErrInvalidCredentials
	}

	return user.Username, nil
}
