package get_garage_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/OtoCare-BookingService/internal/api/handlers"
	"github.com/m04kA/OtoCare-BookingService/internal/service/bookings"
	"github.com/m04kA/OtoCare-BookingService/internal/service/bookings/models"
)

const msgInvalidParams = "некорректные параметры, ожидается дата YYYY-MM-DD"

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

// Handle GET /api/v1/garages/{garageId}/bookings
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq := &models.GetGarageBookingsRequest{
		GarageID: mux.Vars(r)["garageId"],
		Date:     r.URL.Query().Get("date"),
	}

	result, err := h.service.GetGarageBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /garages/{id}/bookings - Invalid parameters: garage=%s, date=%s", serviceReq.GarageID, serviceReq.Date)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /garages/{id}/bookings - Failed to get bookings: garage=%s, error=%v", serviceReq.GarageID, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("GET /garages/{id}/bookings - Bookings retrieved: garage=%s, date=%s, count=%d",
		serviceReq.GarageID, serviceReq.Date, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
