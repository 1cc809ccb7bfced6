package shell

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type to prevent context key collisions.
type contextKey string

// correlationIDKey is the context key holding the active correlation identifier.
const correlationIDKey contextKey = "shell.correlation_id"

// WithCorrelationID returns a context carrying the given correlation identifier.
// The identifier is scoped to the logical request that set it: it is attached
// at request entry and travels with the context through every aggregate
// operation and dispatch call of that request, never via global state.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

// CorrelationIDFrom extracts the active correlation identifier from the context.
// The second return value reports whether one is present and non-blank.
func CorrelationIDFrom(ctx context.Context) (string, bool) {
	correlationID, ok := ctx.Value(correlationIDKey).(string)
	if !ok || correlationID == "" {
		return "", false
	}

	return correlationID, true
}

// EnsureCorrelationID returns a context that is guaranteed to carry a
// correlation identifier, generating a fresh UUID when none is present.
// The identifier is returned alongside so callers can echo it (e.g. in a
// response header).
func EnsureCorrelationID(ctx context.Context) (context.Context, string) {
	if correlationID, ok := CorrelationIDFrom(ctx); ok {
		return ctx, correlationID
	}

	correlationID := uuid.NewString()

	return WithCorrelationID(ctx, correlationID), correlationID
}
