package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/internal/service/catalog/models"
)

// Service сервис справочных данных, которые клиент смотрит перед бронированием
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListCities возвращает города, в которых есть гаражи
func (s *Service) ListCities(ctx context.Context) (*models.CityListResponse, error) {
	cities, err := s.catalogRepo.ListCities(ctx)
	if err != nil {
		s.logger.Error("ListCities: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCities - repository error: %v", ErrInternal, err)
	}
	return &models.CityListResponse{Cities: cities}, nil
}

// ListGarages возвращает гаражи города
func (s *Service) ListGarages(ctx context.Context, city string) (*models.GarageListResponse, error) {
	s.logger.Info("ListGarages: fetching garages for city=%s", city)

	if strings.TrimSpace(city) == "" {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	garages, err := s.catalogRepo.ListGaragesByCity(ctx, city)
	if err != nil {
		s.logger.Error("ListGarages: repository error for city=%s: %v", city, err)
		return nil, fmt.Errorf("%w: ListGarages - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainGarages(garages), nil
}

// ListWorkingHours возвращает часы работы, упорядоченные по id
func (s *Service) ListWorkingHours(ctx context.Context) (*models.WorkingHoursResponse, error) {
	hours, err := s.catalogRepo.ListWorkingHours(ctx)
	if err != nil {
		s.logger.Error("ListWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWorkingHours - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainWorkingHours(hours), nil
}

// ListPackages возвращает пакеты услуг
func (s *Service) ListPackages(ctx context.Context) (*models.PackageListResponse, error) {
	packages, err := s.catalogRepo.ListPackages(ctx)
	if err != nil {
		s.logger.Error("ListPackages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPackages - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPackages(packages), nil
}

// ListBanners возвращает баннеры одного типа; пустой тип означает home
func (s *Service) ListBanners(ctx context.Context, kind string) (*models.BannerListResponse, error) {
	bannerKind := domain.BannerKind(kind)
	if kind == "" {
		bannerKind = domain.BannerKindHome
	}
	if !bannerKind.IsValid() {
		s.logger.Warn("ListBanners: unknown kind=%q", kind)
		return nil, fmt.Errorf("%w: kind must be %q or %q", ErrInvalidInput, domain.BannerKindHome, domain.BannerKindLookBook)
	}

	banners, err := s.catalogRepo.ListBanners(ctx, bannerKind)
	if err != nil {
		s.logger.Error("ListBanners: repository error for kind=%s: %v", bannerKind, err)
		return nil, fmt.Errorf("%w: ListBanners - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBanners(bannerKind, banners), nil
}
