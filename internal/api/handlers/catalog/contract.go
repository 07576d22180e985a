package catalog

import (
	"context"

	"github.com/m04kA/OtoCare-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCities(ctx context.Context) (*models.CityListResponse, error)
	ListGarages(ctx context.Context, city string) (*models.GarageListResponse, error)
	ListWorkingHours(ctx context.Context) (*models.WorkingHoursResponse, error)
	ListPackages(ctx context.Context) (*models.PackageListResponse, error)
	ListBanners(ctx context.Context, kind string) (*models.BannerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
