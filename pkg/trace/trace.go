package trace

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the HTTP header carrying the request id.
const HeaderName = "X-Request-ID"

type ctxKey struct{}

// NewID generates a new request id.
func NewID() string {
	return uuid.NewString()
}

// FromContext returns the request id stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// WithContext returns a copy of ctx carrying id.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}
