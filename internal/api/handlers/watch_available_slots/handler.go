package watch_available_slots

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/OtoCare-BookingService/internal/api/handlers"
	slotsHandler "github.com/m04kA/OtoCare-BookingService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/OtoCare-BookingService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/OtoCare-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate        = "параметр date обязателен"
	msgInvalidInput       = "некорректная дата или id гаража, ожидается дата YYYY-MM-DD"
	msgSubscriptionFailed = "поток доступности слотов прерван"

	eventSlots = "slots"
	eventError = "error"

	codeDataSource = "data_source_failure"
	codeInternal   = "internal"

	defaultKeepAlive = 15 * time.Second
)

// streamError тело завершающего события "error". Текст ошибки источника
// остаётся в логе, RequestID помогает найти нужную запись
type streamError struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

type Handler struct {
	useCase   SubscribeAvailableSlotsUseCase
	logger    Logger
	keepAlive time.Duration
}

func NewHandler(useCase SubscribeAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		logger:    logger,
		keepAlive: defaultKeepAlive,
	}
}

// Handle GET /api/v1/garages/{garageId}/available-slots/stream
// Query params: date (required, YYYY-MM-DD)
//
// Отвечает Server-Sent Events: событие "slots" с текущим расписанием,
// затем по одному на каждое изменение. Сбой отправляется последним событием "error".
// Подписка завершается при отключении клиента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	garageID := mux.Vars(r)["garageId"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /garages/{id}/available-slots/stream - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /garages/{id}/available-slots/stream - ResponseWriter does not support flushing")
		handlers.RespondInternalError(w)
		return
	}

	sub, err := h.useCase.Subscribe(r.Context(), slotsHandler.ToUseCaseRequest(garageID, date))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /garages/{id}/available-slots/stream - Invalid input: garage=%s, date=%s", garageID, date)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrDataSource):
			h.logger.Error("GET /garages/{id}/available-slots/stream - Data source failure: garage=%s, error=%v", garageID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /garages/{id}/available-slots/stream - Failed to subscribe: garage=%s, error=%v", garageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	defer sub.Close()

	// Поток живёт дольше таймаута записи сервера
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.logger.Warn("GET /garages/{id}/available-slots/stream - Failed to clear write deadline: %v", err)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("GET /garages/{id}/available-slots/stream - Stream opened: garage=%s, date=%s", garageID, date)

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /garages/{id}/available-slots/stream - Client disconnected: garage=%s, date=%s", garageID, date)
			return

		case <-ticker.C:
			if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case update, ok := <-sub.Updates():
			if !ok {
				return
			}

			if update.Err != nil {
				requestID := middleware.GetRequestID(r.Context())
				h.logger.Error("GET /garages/{id}/available-slots/stream - Subscription failed: garage=%s, request_id=%s, error=%v",
					garageID, requestID, update.Err)
				_ = writeEvent(w, eventError, newStreamError(update.Err, requestID))
				flusher.Flush()
				return
			}

			if err := writeEvent(w, eventSlots, slotsHandler.FromUseCaseResponse(update.Value)); err != nil {
				h.logger.Warn("GET /garages/{id}/available-slots/stream - Write failed: %v", err)
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w io.Writer, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

func newStreamError(err error, requestID string) streamError {
	code := codeInternal
	if errors.Is(err, getAvailableSlots.ErrDataSource) {
		code = codeDataSource
	}
	return streamError{Error: msgSubscriptionFailed, Code: code, RequestID: requestID}
}
