package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestIDKey is the context key for the generated request identifier.
type requestIDKey struct{}

// LoggingMiddleware returns a middleware that logs requests and responses
// using the provided SugaredLogger, tagging each request with a UUID.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := uuid.New().String()
			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID))
			w.Header().Set("X-Request-ID", reqID)

			next.ServeHTTP(rw, r)

			log.Infow("request",
				"request_id", reqID,
				"method", r.Method,
				"uri", r.RequestURI,
				"status", rw.statusCode,
				"response_size", rw.size,
				"duration", time.Since(start),
			)
		})
	}
}

// GetRequestID returns the request id set by LoggingMiddleware, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
