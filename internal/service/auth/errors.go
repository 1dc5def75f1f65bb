package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token cannot be accepted. The specific
	// malformed/bad-signature errors below wrap it, so callers that only
	// care about the merged "unauthenticated" outcome can check this one.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMalformedToken indicates the token string could not be parsed
	// into header, payload and signature segments.
	ErrMalformedToken = fmt.Errorf("%w: malformed", ErrInvalidToken)

	// ErrInvalidSignature indicates the signature does not match the
	// header and payload under the server's signing secret.
	ErrInvalidSignature = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates a login attempt failed. Unknown
	// username and wrong password deliberately collapse into this single
	// error so callers cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
