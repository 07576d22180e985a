package users

import (
	"context"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

type UserRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс логгера для сервиса
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
