package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/internal/service/sessions"
	"github.com/m04kA/OtoCare-BookingService/pkg/logger"
)

type fakeResolver struct {
	sessions map[string]*domain.Session
	err      error
}

func (f fakeResolver) Resolve(_ context.Context, token string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.sessions[token]; ok {
		return s, nil
	}
	return nil, sessions.ErrUnauthorized
}

func TestAuth(t *testing.T) {
	resolver := fakeResolver{sessions: map[string]*domain.Session{
		"good": {Token: "good", Phone: "+628111"},
	}}

	var seen *domain.Session
	h := Auth(resolver, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetSession(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		header string
		status int
	}{
		{"", http.StatusUnauthorized},
		{"Basic abc", http.StatusUnauthorized},
		{"Bearer ", http.StatusUnauthorized},
		{"Bearer bad", http.StatusUnauthorized},
		{"Bearer good", http.StatusNoContent},
		{"bearer good", http.StatusNoContent},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, tc.status, rec.Code, tc.header)
	}
	require.NotNil(t, seen)
	assert.Equal(t, "+628111", seen.Phone)
}

func TestAuth_StoreFailure(t *testing.T) {
	h := Auth(fakeResolver{err: errors.New("redis down")}, logger.NewNop())(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer x")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

type recordedRequest struct {
	method, route string
	status        int
}

type fakeMetrics struct {
	mu   sync.Mutex
	seen []recordedRequest
}

func (m *fakeMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, recordedRequest{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/garages/{garageId}/available-slots", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/garages/G1/available-slots", nil))

	require.Len(t, m.seen, 1)
	assert.Equal(t, recordedRequest{http.MethodGet, "/garages/{garageId}/available-slots", http.StatusTeapot}, m.seen[0])
}

func TestRequestLogging_PropagatesID(t *testing.T) {
	var got string
	h := RequestLogging(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", got)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "req-42", got)
	assert.Equal(t, got, rec.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(0.001, 2, nil, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestClientIP_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	ips := clientIPResolver{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", ips.clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "192.0.2.1", ips.clientIP(req))
}

func TestClientIP_BehindTrustedProxies(t *testing.T) {
	ips := clientIPResolver{trusted: []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"

	// The client can prepend anything; only the hop our proxy appended counts.
	req.Header.Set("X-Forwarded-For", "1.1.1.1, 203.0.113.7, 10.0.0.9")
	assert.Equal(t, "203.0.113.7", ips.clientIP(req))

	req.Header.Set("X-Forwarded-For", "garbage")
	assert.Equal(t, "10.0.0.2", ips.clientIP(req))

	req.Header.Del("X-Forwarded-For")
	assert.Equal(t, "10.0.0.2", ips.clientIP(req))
}

func TestRateLimit_SpoofedForwardedForSharesBucket(t *testing.T) {
	h := RateLimit(0.001, 1, nil, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.4:5555"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.2"))
}
