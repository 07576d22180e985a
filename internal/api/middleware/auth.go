package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/OtoCare-BookingService/internal/api/handlers"
	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/internal/service/sessions"
)

type contextKey string

const (
	sessionKey   contextKey = "session"
	requestIDKey contextKey = "request_id"
)

const (
	msgMissingToken   = "отсутствует bearer токен"
	msgSessionExpired = "сессия не найдена или истекла"
)

// Auth requires "Authorization: Bearer <token>" and stores the resolved
// session in the request context.
func Auth(resolver SessionResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			sess, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, sessions.ErrUnauthorized) {
					logger.Warn("%s %s - Session rejected", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgSessionExpired)
					return
				}
				logger.Error("%s %s - Failed to resolve session: %v", r.Method, r.URL.Path, err)
				handlers.RespondServiceUnavailable(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WithSession stores the session in ctx.
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession returns the session stored by Auth.
func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*domain.Session)
	return sess, ok && sess != nil
}
