package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

type reqIDKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithRequestID stores the request correlation identifier and attaches it to
// the contextual logger.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	ctx = context.WithValue(ctx, reqIDKey{}, reqID)
	return WithContext(ctx, FromContext(ctx).With("req_id", reqID))
}

// RequestIDFromContext returns the correlation identifier for the current
// request, or an empty string outside of a request scope.
func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(reqIDKey{}).(string)
	if !ok {
		return ""
	}
	return id
}
