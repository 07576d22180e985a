package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/internal/watch"
)

// UseCase use case для получения свободных слотов гаража на дату.
// Каждый вызов читает хранилище, кэша нет
type UseCase struct {
	bookingRepo BookingRepository
	changes     ChangeFeed
	metrics     Metrics
	logger      Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	changes ChangeFeed,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		changes:     changes,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute возвращает текущее расписание
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: garage=%s, date=%s", req.GarageID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем занятые слоты
	booked, err := uc.loadBooked(ctx, req)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 3. Строим полное расписание
	resp := toResponse(req, booked)

	uc.logger.Info("GetAvailableSlots: garage=%s, date=%s, booked=%d/%d",
		req.GarageID, req.Date, countBooked(resp.Slots), domain.SlotsPerDay)
	return resp, nil
}

// Subscribe отдаёт текущее расписание, а затем новое после каждого изменения
// броней гаража на эту дату. При сбое хранилища или потока изменений
// подписка отдаёт одно обновление с ErrDataSource и завершается
func (uc *UseCase) Subscribe(ctx context.Context, req *Request) (*Subscription, error) {
	uc.logger.Info("SubscribeAvailableSlots: garage=%s, date=%s", req.GarageID, req.Date)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubscribeAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	key := domain.ScheduleKey{Date: req.Date, GarageID: req.GarageID}

	// Подписываемся до первой загрузки, чтобы не потерять изменения между ними
	feed, err := uc.changes.Subscribe(ctx, key.Topic())
	if err != nil {
		uc.logger.Error("SubscribeAvailableSlots: subscribe topic=%s: %v", key.Topic(), err)
		return nil, fmt.Errorf("%w: subscribe: %v", ErrDataSource, err)
	}

	stream := watch.Start(ctx, feed,
		func(ctx context.Context) ([]int, error) {
			booked, err := uc.loadBooked(ctx, req)
			if err != nil {
				uc.logger.Error("SubscribeAvailableSlots: %v", err)
			}
			return booked, err
		},
		func(booked []int) *Response {
			return toResponse(req, booked)
		},
		watch.WithFeedError(func(err error) error {
			uc.logger.Error("SubscribeAvailableSlots: topic=%s: %v", key.Topic(), err)
			return fmt.Errorf("%w: change feed topic=%s: %v", ErrDataSource, key.Topic(), err)
		}),
	)

	uc.metrics.SubscriptionOpened()

	return &Subscription{
		stream: stream,
		onClose: func() {
			uc.metrics.SubscriptionClosed()
			uc.logger.Info("SubscribeAvailableSlots: closed garage=%s, date=%s", req.GarageID, req.Date)
		},
	}, nil
}

func (uc *UseCase) loadBooked(ctx context.Context, req *Request) ([]int, error) {
	booked, err := uc.bookingRepo.ListBookedSlotIDs(ctx, req.Date, req.GarageID)
	if err != nil {
		return nil, fmt.Errorf("%w: list booked slots garage=%s date=%s: %v", ErrDataSource, req.GarageID, req.Date, err)
	}
	return booked, nil
}

func toResponse(req *Request, booked []int) *Response {
	return &Response{
		Date:     req.Date,
		GarageID: req.GarageID,
		Slots:    domain.BuildSchedule(booked),
	}
}

func countBooked(slots []domain.TimeSlot) int {
	n := 0
	for _, s := range slots {
		if !s.Available {
			n++
		}
	}
	return n
}
