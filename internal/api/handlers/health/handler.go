package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/OtoCare-BookingService/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

// Pinger is a dependency that can report its liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

type Logger interface {
	Error(format string, v ...interface{})
}

type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	deps   map[string]Pinger
	logger Logger
}

// NewHandler checks every named dependency on each request.
func NewHandler(deps map[string]Pinger, logger Logger) *Handler {
	return &Handler{deps: deps, logger: logger}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	resp := Response{Status: "ok", Checks: make(map[string]string, len(h.deps))}
	for name, dep := range h.deps {
		if err := dep.PingContext(ctx); err != nil {
			h.logger.Error("GET /healthz - %s is unavailable: %v", name, err)
			resp.Status = "unavailable"
			resp.Checks[name] = "down"
			continue
		}
		resp.Checks[name] = "up"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	handlers.RespondJSON(w, status, resp)
}
