// Package requestid propagates the per-request correlation id through
// context so every log line of one diagnosis run can be tied together.
package requestid

import "context"

type ctxKey struct{}

// NewContext returns a context that carries the given request ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID stored in ctx, or an empty string.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
