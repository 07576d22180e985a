package sessions

import (
	"errors"
	"net/http"

	"github.com/m04kA/OtoCare-BookingService/internal/api/handlers"
	"github.com/m04kA/OtoCare-BookingService/internal/api/middleware"
	"github.com/m04kA/OtoCare-BookingService/internal/service/sessions"
	"github.com/m04kA/OtoCare-BookingService/internal/service/sessions/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSession     = "отсутствует сессия"
	msgUserNotFound       = "пользователь не найден"
	msgGarageNotFound     = "гараж не найден в указанном городе"
	msgSessionExpired     = "сессия не найдена или истекла"
)

// Handler открывает, обновляет и закрывает сессии клиентов
type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Login POST /api/v1/sessions
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	sess, err := h.service.Login(r.Context(), &models.LoginRequest{Phone: req.Phone})
	if err != nil {
		h.respondServiceError(w, "POST /sessions", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, sess)
}

// Current GET /api/v1/sessions/current
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	resp, err := h.service.Current(r.Context(), sess.Token)
	if err != nil {
		h.respondServiceError(w, "GET /sessions/current", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Select PUT /api/v1/sessions/current
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req SelectRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/current - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	resp, err := h.service.Select(r.Context(), sess.Token, req.ToServiceRequest())
	if err != nil {
		h.respondServiceError(w, "PUT /sessions/current", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Logout DELETE /api/v1/sessions/current
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	if err := h.service.Logout(r.Context(), sess.Token); err != nil {
		h.respondServiceError(w, "DELETE /sessions/current", err)
		return
	}

	h.logger.Info("DELETE /sessions/current - Session closed: phone=%s", sess.Phone)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, sessions.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
	case errors.Is(err, sessions.ErrUserNotFound):
		h.logger.Warn("%s - User not found", route)
		handlers.RespondNotFound(w, msgUserNotFound)
	case errors.Is(err, sessions.ErrGarageNotFound):
		h.logger.Warn("%s - Garage not found", route)
		handlers.RespondNotFound(w, msgGarageNotFound)
	case errors.Is(err, sessions.ErrUnauthorized):
		handlers.RespondUnauthorized(w, msgSessionExpired)
	case errors.Is(err, sessions.ErrInternal):
		h.logger.Error("%s - Store failure: %v", route, err)
		handlers.RespondServiceUnavailable(w)
	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
