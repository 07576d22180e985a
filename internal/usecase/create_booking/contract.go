package create_booking

import (
	"context"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

// BookingRepository хранилище бронирований, используемое при приёме брони
type BookingRepository interface {
	ListBookedSlotIDs(ctx context.Context, date, garageID string) ([]int, error)
	// CreateIfSlotFree атомарно вставляет бронь или возвращает booking.ErrSlotTaken
	CreateIfSlotFree(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager выполняет fn в одной транзакции БД
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ChangePublisher уведомляет подписчиков расписания об изменениях
type ChangePublisher interface {
	Publish(ctx context.Context, topic string) error
}

// EventPublisher публикует интеграционные события о принятых бронях
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking *domain.Booking) error
}

type Metrics interface {
	BookingAdmitted()
	BookingRejected(reason string)
}

// Logger интерфейс логгера для use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
