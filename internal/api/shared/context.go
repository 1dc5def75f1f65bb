// Package shared holds request-scoped helpers used across API handlers:
// context keys, trace IDs, and JSON response writers.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

// ContextKey is the key type for request-scoped context values.
type ContextKey string

// Context keys for various values
const (
	// SubjectContextKey is the context key for the authenticated subject
	// (the username). It is set by the authentication middleware for the
	// lifetime of a single request and never stored anywhere global, so
	// identities cannot leak between concurrent requests.
	SubjectContextKey ContextKey = "subject"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SubjectFromContext returns the authenticated subject installed by the
// authentication middleware, or ("", false) when the request is
// unauthenticated.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectContextKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}

// WithSubject returns a context carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectContextKey, subject)
}

// generateTraceID creates a random trace ID for request tracking.
// Returns a 32-character hex string (16 bytes).
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		slog.Error("failed to generate secure random trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
