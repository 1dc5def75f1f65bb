// Package auth implements the stateless authentication subsystem: JWT
// minting and verification, password comparison, and credential
// verification against the user store.
//
// Known limitation carried over from the original design: tokens cannot
// be revoked before expiry, and the process-wide signing secret has no
// rotation support; rotating it invalidates every outstanding token.
package auth

import (
	"context"
	"time"
)

// TokenService defines operations for managing JWT authentication tokens.
type TokenService interface {
	// GenerateToken creates a signed token whose subject is the given
	// username and whose expiry is the configured lifetime from now.
	// This is the only place in the system where tokens are minted.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken verifies the provided token string and returns the
	// subject username it was issued for. The signature is verified
	// before any payload field is trusted. Returns ErrExpiredToken,
	// ErrMalformedToken, ErrInvalidSignature, or ErrInvalidToken on
	// failure. Every call re-evaluates expiry against the current time;
	// results are never cached.
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

// Claims carries the verified token payload returned to callers that
// need more than the subject.
type Claims struct {
	// Subject is the username the token was issued for.
	Subject string

	// IssuedAt is when the token was minted.
	IssuedAt time.Time

	// ExpiresAt is when the token stops verifying.
	ExpiresAt time.Time
}
