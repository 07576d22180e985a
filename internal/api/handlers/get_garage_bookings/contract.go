package get_garage_bookings

import (
	"context"

	"github.com/m04kA/OtoCare-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetGarageBookings(ctx context.Context, req *models.GetGarageBookingsRequest) (*models.GarageDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
