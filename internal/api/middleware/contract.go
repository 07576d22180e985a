package middleware

import (
	"context"
	"time"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

// SessionResolver turns a bearer token into a live session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// HTTPMetrics records served requests.
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
