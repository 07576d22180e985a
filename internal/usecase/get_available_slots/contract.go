package get_available_slots

import (
	"context"

	"github.com/m04kA/OtoCare-BookingService/internal/watch"
)

// BookingRepository читающая часть хранилища бронирований
type BookingRepository interface {
	// ListBookedSlotIDs возвращает занятые слоты гаража на дату (точное совпадение обоих полей)
	ListBookedSlotIDs(ctx context.Context, date, garageID string) ([]int, error)
}

// ChangeFeed сообщает о добавленных или удалённых бронях одного расписания
type ChangeFeed interface {
	Subscribe(ctx context.Context, topic string) (watch.Feed, error)
}

// Metrics считает открытые подписки
type Metrics interface {
	SubscriptionOpened()
	SubscriptionClosed()
}

// Logger интерфейс логгера для use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
