package bookings

import (
	"context"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

// BookingRepository читающая часть хранилища бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, phone string) ([]*domain.Booking, error)
	ListByGarageAndDate(ctx context.Context, garageID, date string) ([]*domain.Booking, error)
}

// Logger интерфейс логгера для сервиса
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
