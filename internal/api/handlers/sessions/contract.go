package sessions

import (
	"context"

	"github.com/m04kA/OtoCare-BookingService/internal/service/sessions/models"
)

type SessionService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error)
	Current(ctx context.Context, token string) (*models.SessionResponse, error)
	Select(ctx context.Context, token string, req *models.SelectRequest) (*models.SessionResponse, error)
	Logout(ctx context.Context, token string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
