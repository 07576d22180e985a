package get_available_slots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/OtoCare-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/OtoCare-BookingService/pkg/logger"
)

type fakeUseCase struct {
	err error
}

func (f fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableSlots.Response{
		Date:     req.Date,
		GarageID: req.GarageID,
		Slots:    domain.BuildSchedule([]int{1}),
	}, nil
}

func serve(uc GetAvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/garages/{garageId}/available-slots", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	rec := serve(fakeUseCase{}, "/api/v1/garages/G1/available-slots?date=2024-05-01")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2024-05-01",
		"garageId": "G1",
		"slots": [
			{"id": 0, "label": "7:00-9:00", "available": true},
			{"id": 1, "label": "9:00-11:00", "available": false},
			{"id": 2, "label": "11:00-13:00", "available": true},
			{"id": 3, "label": "13:00-15:00", "available": true},
			{"id": 4, "label": "16:00-17:00", "available": true}
		]
	}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(fakeUseCase{}, "/api/v1/garages/G1/available-slots").Code)

	invalid := fakeUseCase{err: fmt.Errorf("%w: bad date", getAvailableSlots.ErrInvalidInput)}
	assert.Equal(t, http.StatusBadRequest, serve(invalid, "/api/v1/garages/G1/available-slots?date=x").Code)

	down := fakeUseCase{err: fmt.Errorf("%w: connection refused", getAvailableSlots.ErrDataSource)}
	rec := serve(down, "/api/v1/garages/G1/available-slots?date=2024-05-01")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
