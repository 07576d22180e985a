package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования.
// Из любого числа конкурентных запросов на один (date, garage, slot)
// успешен ровно один, остальные получают ErrSlotAlreadyBooked
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	changes     ChangePublisher
	events      EventPublisher
	metrics     Metrics
	logger      Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	changes ChangePublisher,
	events EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		changes:     changes,
		events:      events,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute резервирует слот. nil означает, что бронь зафиксирована
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CreateBooking: garage=%s, date=%s, slot=%d", req.GarageID, req.Date, req.TimeSlotID)

	// 1. Валидация входных данных до обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		if errors.Is(err, ErrInvalidSlot) {
			uc.metrics.BookingRejected(reasonInvalidSlot)
		} else {
			uc.metrics.BookingRejected(reasonInvalidInput)
		}
		return err
	}

	// 2. Начатая вставка доводится до конца, даже если клиент отключился
	admitCtx := context.WithoutCancel(ctx)

	var created *domain.Booking

	// 3. Предпроверка и условная вставка в одной транзакции
	err := uc.txManager.Do(admitCtx, func(txCtx context.Context) error {
		// 3.1. Быстрый путь: слот уже виден как занятый
		booked, err := uc.bookingRepo.ListBookedSlotIDs(txCtx, req.Date, req.GarageID)
		if err != nil {
			return fmt.Errorf("%w: list booked slots: %v", ErrDataSource, err)
		}
		if containsSlot(booked, req.TimeSlotID) {
			return ErrSlotAlreadyBooked
		}

		// 3.2. Решает уникальный индекс, предпроверка могла устареть
		booking, err := uc.bookingRepo.CreateIfSlotFree(txCtx, &domain.Booking{
			Date:          req.Date,
			GarageID:      req.GarageID,
			TimeSlotID:    req.TimeSlotID,
			CustomerPhone: req.CustomerPhone,
			PackageID:     req.PackageID,
			Notes:         req.Notes,
		})
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return ErrSlotAlreadyBooked
		}
		if err != nil {
			return fmt.Errorf("%w: insert booking: %v", ErrDataSource, err)
		}

		created = booking
		return nil
	})

	switch {
	case errors.Is(err, ErrSlotAlreadyBooked):
		uc.logger.Warn("CreateBooking: slot already booked garage=%s, date=%s, slot=%d",
			req.GarageID, req.Date, req.TimeSlotID)
		uc.metrics.BookingRejected(reasonAlreadyBooked)
		return err
	case errors.Is(err, ErrDataSource):
		uc.logger.Error("CreateBooking: %v", err)
		uc.metrics.BookingRejected(reasonDataSource)
		return err
	case err != nil:
		// Ошибки begin/commit от менеджера транзакций
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		uc.metrics.BookingRejected(reasonDataSource)
		return fmt.Errorf("%w: %v", ErrDataSource, err)
	}

	uc.metrics.BookingAdmitted()
	uc.logger.Info("CreateBooking: created booking id=%d garage=%s, date=%s, slot=%d",
		created.ID, created.GarageID, created.Date, created.TimeSlotID)

	// 4. Уведомляем подписчиков; бронь уже сохранена, ошибки только логируем
	if err := uc.changes.Publish(admitCtx, created.Key().Topic()); err != nil {
		uc.logger.Warn("CreateBooking: change notification failed for booking id=%d: %v", created.ID, err)
	}
	if err := uc.events.PublishBookingCreated(admitCtx, created); err != nil {
		uc.logger.Warn("CreateBooking: booking.created event failed for booking id=%d: %v", created.ID, err)
	}

	return nil
}
