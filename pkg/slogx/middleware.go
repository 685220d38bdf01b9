package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sablehq/enrolld/pkg/idx"
)

// HTTPMiddleware logs requests and attaches a contextual logger into request
// context. The correlation identifier is taken from the X-Request-ID header
// when provided, generated otherwise, and echoed back on the response.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = idx.New().String()
			}
			w.Header().Set("X-Request-ID", reqID)

			logger := base.With(
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			ctx := WithContext(r.Context(), logger)
			ctx = WithRequestID(ctx, reqID)
			r = r.WithContext(ctx)

			next.ServeHTTP(rw, r)

			FromContext(ctx).Info("http_request",
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"user_agent", r.UserAgent(),
			)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter

	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
