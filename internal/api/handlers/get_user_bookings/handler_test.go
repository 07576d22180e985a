package get_user_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/OtoCare-BookingService/internal/api/middleware"
	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/internal/service/bookings/models"
	"github.com/m04kA/OtoCare-BookingService/pkg/logger"
)

type fakeService struct {
	err   error
	phone string
}

func (f *fakeService) GetCustomerBookings(_ context.Context, phone string) (*models.BookingListResponse, error) {
	f.phone = phone
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/me/bookings", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = req.WithContext(middleware.WithSession(req.Context(), &domain.Session{Phone: "+628111"}))
	rec = httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, "+628111", svc.phone)

	svc.err = errors.New("db down")
	rec = httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
