package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/OtoCare-BookingService/internal/api/handlers"
	"github.com/m04kA/OtoCare-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/OtoCare-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSession     = "отсутствует сессия"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgSlotAlreadyBooked  = "выбранный слот уже забронирован"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq := req.ToUseCaseRequest(sess.Phone)

	err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: slot=%d", useCaseReq.TimeSlotID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: garage=%s, date=%s, slot=%d",
				useCaseReq.GarageID, useCaseReq.Date, useCaseReq.TimeSlotID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrDataSource):
			h.logger.Error("POST /bookings - Data source failure: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: garage=%s, error=%v", useCaseReq.GarageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: garage=%s, date=%s, slot=%d, customer=%s",
		useCaseReq.GarageID, useCaseReq.Date, useCaseReq.TimeSlotID, sess.Phone)
	handlers.RespondJSON(w, http.StatusCreated, NewBookingCreatedResponse(useCaseReq))
}
