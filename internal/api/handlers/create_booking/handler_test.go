package create_booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OtoCare-BookingService/internal/api/middleware"
	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	createBooking "github.com/m04kA/OtoCare-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/OtoCare-BookingService/pkg/logger"
)

type fakeUseCase struct {
	err  error
	got  *createBooking.Request
	hits int
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) error {
	f.hits++
	f.got = req
	return f.err
}

func serve(t *testing.T, uc *fakeUseCase, body string, withSession bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withSession {
		req = req.WithContext(middleware.WithSession(req.Context(), &domain.Session{Phone: "+628111"}))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(t, uc, `{"date":"2024-05-01","garageId":"G1","timeSlotId":0,"notes":"oil change"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"date":"2024-05-01","garageId":"G1","timeSlotId":0,"timeSlotLabel":"7:00-9:00"}`, rec.Body.String())
	require.NotNil(t, uc.got)
	assert.Equal(t, "+628111", uc.got.CustomerPhone)
	assert.Equal(t, "oil change", *uc.got.Notes)
}

func TestHandle_RequestErrors(t *testing.T) {
	cases := map[string]struct {
		body    string
		session bool
		status  int
	}{
		"no session":     {`{"date":"2024-05-01","garageId":"G1","timeSlotId":1}`, false, http.StatusUnauthorized},
		"malformed body": {`{"date":`, true, http.StatusBadRequest},
		"missing slot":   {`{"date":"2024-05-01","garageId":"G1"}`, true, http.StatusBadRequest},
		"bad date":       {`{"date":"May 1","garageId":"G1","timeSlotId":1}`, true, http.StatusBadRequest},
		"unknown field":  {`{"date":"2024-05-01","garageId":"G1","timeSlotId":1,"userId":7}`, true, http.StatusBadRequest},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(t, uc, tc.body, tc.session)
			assert.Equal(t, tc.status, rec.Code)
			assert.Zero(t, uc.hits)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: got 7", createBooking.ErrInvalidSlot), http.StatusBadRequest},
		{fmt.Errorf("%w: bad garage", createBooking.ErrInvalidInput), http.StatusBadRequest},
		{createBooking.ErrSlotAlreadyBooked, http.StatusConflict},
		{fmt.Errorf("%w: insert booking: disk full", createBooking.ErrDataSource), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := serve(t, &fakeUseCase{err: tc.err}, `{"date":"2024-05-01","garageId":"G1","timeSlotId":7}`, true)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}
