package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/libraryevents/core/handler"
	"github.com/dmitrymomot/libraryevents/core/logger"
)

// requestIDHeader is the header carrying the per-request identifier.
const requestIDHeader = "X-Request-ID"

type requestIDContextKey struct{}

// RequestID assigns a unique identifier to each request for tracing and
// logging. An existing inbound ID is reused; otherwise a UUID is generated.
// The ID is stored in the request context and echoed in the response header.
func RequestID() handler.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDContextKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID retrieves the request ID from the request context.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}

// Logging records one line per request with method, path, status and latency.
func Logging(log *slog.Logger) handler.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			id, _ := GetRequestID(r.Context())
			log.Info("request handled",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(sw.status),
				logger.Latency(time.Since(start)),
				logger.RequestID(id),
			)
		})
	}
}

// statusWriter captures the status code written by downstream handlers.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
