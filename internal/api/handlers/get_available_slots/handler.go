package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/OtoCare-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/OtoCare-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate  = "параметр date обязателен"
	msgInvalidInput = "некорректная дата или id гаража, ожидается дата YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/garages/{garageId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	garageID := mux.Vars(r)["garageId"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /garages/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(garageID, date))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /garages/{id}/available-slots - Invalid input: garage=%s, date=%s", garageID, date)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrDataSource):
			h.logger.Error("GET /garages/{id}/available-slots - Data source failure: garage=%s, error=%v", garageID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /garages/{id}/available-slots - Failed to get slots: garage=%s, error=%v", garageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /garages/{id}/available-slots - Slots retrieved: garage=%s, date=%s", garageID, date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
