package get_garage_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/OtoCare-BookingService/internal/infra/storage/storagetest"
	"github.com/m04kA/OtoCare-BookingService/internal/service/bookings"
	"github.com/m04kA/OtoCare-BookingService/pkg/logger"
)

func TestHandle_DaySheetHidesCustomers(t *testing.T) {
	db := storagetest.NewDB(t)
	repo := bookingRepo.NewRepository(db)
	_, err := repo.CreateIfSlotFree(context.Background(), &domain.Booking{
		Date: "2024-05-01", GarageID: "G1", TimeSlotID: 3, CustomerPhone: "+628111",
	})
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/garages/{garageId}/bookings", NewHandler(bookings.NewService(repo, logger.NewNop()), logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/garages/G1/bookings?date=2024-05-01", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"timeSlotId":3`)
	assert.NotContains(t, rec.Body.String(), "+628111")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/garages/G1/bookings", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
