package users

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/OtoCare-BookingService/internal/api/handlers"
	"github.com/m04kA/OtoCare-BookingService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register POST /api/v1/users
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /users - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	user, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /users - Failed to register user: %v", err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /users - User saved: phone=%s", user.Phone)
	handlers.RespondJSON(w, http.StatusOK, user)
}

// Get GET /api/v1/users/{phone}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	user, err := h.service.GetByPhone(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /users/{phone} - User not found: phone=%s", phone)
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("GET /users/{phone} - Failed to get user: phone=%s, error=%v", phone, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
