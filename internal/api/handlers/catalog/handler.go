package catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/OtoCare-BookingService/internal/api/handlers"
	"github.com/m04kA/OtoCare-BookingService/internal/service/catalog"
)

// Handler отдаёт справочные данные только для чтения
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Cities GET /api/v1/cities
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCities(r.Context())
	if err != nil {
		h.fail(w, "GET /cities", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Garages GET /api/v1/cities/{city}/garages
func (h *Handler) Garages(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListGarages(r.Context(), mux.Vars(r)["city"])
	if err != nil {
		h.fail(w, "GET /cities/{city}/garages", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// WorkingHours GET /api/v1/working-hours
func (h *Handler) WorkingHours(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListWorkingHours(r.Context())
	if err != nil {
		h.fail(w, "GET /working-hours", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Packages GET /api/v1/packages
func (h *Handler) Packages(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPackages(r.Context())
	if err != nil {
		h.fail(w, "GET /packages", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Banners GET /api/v1/banners?kind=home|lookbook
func (h *Handler) Banners(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBanners(r.Context(), r.URL.Query().Get("kind"))
	if err != nil {
		h.fail(w, "GET /banners", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) fail(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
	case errors.Is(err, catalog.ErrInternal):
		h.logger.Error("%s - Store failure: %v", route, err)
		handlers.RespondServiceUnavailable(w)
	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
