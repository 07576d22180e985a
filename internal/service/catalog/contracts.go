package catalog

import (
	"context"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

// CatalogRepository читает справочные данные
type CatalogRepository interface {
	ListCities(ctx context.Context) ([]string, error)
	ListGaragesByCity(ctx context.Context, city string) ([]*domain.Garage, error)
	ListWorkingHours(ctx context.Context) ([]*domain.WorkingHours, error)
	ListPackages(ctx context.Context) ([]*domain.Package, error)
	ListBanners(ctx context.Context, kind domain.BannerKind) ([]*domain.Banner, error)
}

// Logger интерфейс логгера для сервиса
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
