// Package logging provides the correlation context carried through every
// request and the slog handler that attaches it (sanitized) to each record.
package logging

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDKey     contextKey = "request_id"
	correlationIDKey contextKey = "correlation_id"
	searchIDKey      contextKey = "search_id"
)

// Unset is logged for scope values that were never established.
const Unset = "-"

// WithRequestID returns a context carrying the request id. An empty id is
// replaced with a generated one.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID returns a context carrying the correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationIDKey, id)
}

// WithSearchID returns a context carrying the search id. Set by the search
// route once the id is known.
func WithSearchID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, searchIDKey, id)
}

// RequestID returns the request id or Unset.
func RequestID(ctx context.Context) string {
	return fromCtx(ctx, requestIDKey)
}

// CorrelationID returns the correlation id, falling back to the request id,
// then Unset. A client that sent no correlation header correlates by
// request id.
func CorrelationID(ctx context.Context) string {
	if v := fromCtx(ctx, correlationIDKey); v != Unset {
		return v
	}
	return fromCtx(ctx, requestIDKey)
}

// SearchID returns the search id or Unset.
func SearchID(ctx context.Context) string {
	return fromCtx(ctx, searchIDKey)
}

// Rescope re-establishes the correlation scope inside a background job from
// explicitly passed trace values. Jobs do not inherit the request context.
func Rescope(ctx context.Context, traceID, searchID string) context.Context {
	ctx = WithRequestID(ctx, traceID)
	ctx = WithCorrelationID(ctx, traceID)
	return WithSearchID(ctx, searchID)
}

func fromCtx(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return Unset
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v
	}
	return Unset
}
