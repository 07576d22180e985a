package watch_available_slots

import (
	"context"

	getAvailableSlots "github.com/m04kA/OtoCare-BookingService/internal/usecase/get_available_slots"
)

type SubscribeAvailableSlotsUseCase interface {
	Subscribe(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Subscription, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
