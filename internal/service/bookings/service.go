package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/OtoCare-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Чужое бронирование даёт ErrAccessDenied
func (s *Service) GetByID(ctx context.Context, id int64, phone string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%s", id, phone)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerPhone != phone {
		s.logger.Warn("GetByID: access denied for customer=%s to booking id=%d", phone, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings возвращает бронирования клиента, новые первыми
func (s *Service) GetCustomerBookings(ctx context.Context, phone string) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%s", phone)

	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByCustomer(ctx, phone)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%s", len(bookings), phone)
	return models.FromDomainBookingList(bookings), nil
}

// GetGarageBookings возвращает занятость гаража на день без данных клиентов
func (s *Service) GetGarageBookings(ctx context.Context, req *models.GetGarageBookingsRequest) (*models.GarageDayResponse, error) {
	s.logger.Info("GetGarageBookings: fetching bookings for garage=%s, date=%s", req.GarageID, req.Date)

	if strings.TrimSpace(req.GarageID) == "" || !domain.IsValidDate(req.Date) {
		s.logger.Warn("GetGarageBookings: invalid request garage=%q, date=%q", req.GarageID, req.Date)
		return nil, fmt.Errorf("%w: garageId and date (%s) are required", ErrInvalidInput, domain.DateFormat)
	}

	bookings, err := s.bookingRepo.ListByGarageAndDate(ctx, req.GarageID, req.Date)
	if err != nil {
		s.logger.Error("GetGarageBookings: repository error for garage=%s: %v", req.GarageID, err)
		return nil, fmt.Errorf("%w: GetGarageBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainGarageDay(req.GarageID, req.Date, bookings), nil
}
