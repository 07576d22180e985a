package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// RequestLogging tags each request with an id and logs its outcome.
// An inbound X-Request-ID is kept.
func RequestLogging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(headerRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(headerRequestID, requestID)

			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))

			duration := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - %d in %s (request_id=%s)", r.Method, r.URL.Path, rec.status, duration, requestID)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - %d in %s (request_id=%s)", r.Method, r.URL.Path, rec.status, duration, requestID)
			default:
				logger.Info("%s %s - %d in %s (request_id=%s)", r.Method, r.URL.Path, rec.status, duration, requestID)
			}
		})
	}
}

// GetRequestID returns the id assigned by RequestLogging.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
