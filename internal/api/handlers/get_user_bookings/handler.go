package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/OtoCare-BookingService/internal/api/handlers"
	"github.com/m04kA/OtoCare-BookingService/internal/api/middleware"
)

const msgMissingSession = "отсутствует сессия"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("GET /me/bookings - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.service.GetCustomerBookings(r.Context(), sess.Phone)
	if err != nil {
		h.logger.Error("GET /me/bookings - Failed to get bookings: customer=%s, error=%v", sess.Phone, err)
		handlers.RespondServiceUnavailable(w)
		return
	}

	h.logger.Info("GET /me/bookings - Bookings retrieved: customer=%s, count=%d", sess.Phone, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
