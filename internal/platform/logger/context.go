package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type to avoid collisions with context
// keys defined elsewhere.
type contextKey struct{}

// loggerKey is the context key under which a request-scoped logger is
// stored.
var loggerKey = contextKey{}

// WithLogger returns a context carrying the given logger. Handlers and
// middleware use this to attach request-scoped attributes (trace ID)
// that flow down into the store layer.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger from the context, falling back to
// the process default logger when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault retrieves the logger from the context, falling
// back to the provided default when none is set.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return def
}
