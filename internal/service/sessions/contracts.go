package sessions

import (
	"context"
	"time"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

// SessionStore хранит сессии до истечения срока или удаления
type SessionStore interface {
	Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

type UserRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
}

// GarageCatalog используется для проверки выбранного гаража
type GarageCatalog interface {
	ListGaragesByCity(ctx context.Context, city string) ([]*domain.Garage, error)
}

// Logger интерфейс логгера для сервиса
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
