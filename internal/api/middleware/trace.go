// Package middleware contains HTTP middleware applied across the API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/tkaz/blog-api/internal/api/shared"
	"github.com/tkaz/blog-api/internal/platform/logger"
)

// Trace returns middleware that assigns a trace ID to each request and
// stores a trace-scoped logger in the context. Handlers and stores that
// log through logger.FromContextOrDefault pick up the trace ID
// automatically.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			log := base.With(slog.String("trace_id", shared.GetTraceID(ctx)))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
