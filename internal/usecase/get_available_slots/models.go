package get_available_slots

import (
	"sync"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/internal/watch"
)

// Request расписание гаража на один день
type Request struct {
	Date     string // YYYY-MM-DD
	GarageID string
}

// Response всегда содержит domain.SlotsPerDay слотов, упорядоченных по id
type Response struct {
	Date     string
	GarageID string
	Slots    []domain.TimeSlot
}

// Update одно обновление подписки
type Update = watch.Event[*Response]

// Subscription живой запрос доступности.
// Updates закрывается после Close или после первого обновления с ошибкой
type Subscription struct {
	stream  *watch.Stream[*Response]
	once    sync.Once
	onClose func()
}

func (s *Subscription) Updates() <-chan Update {
	return s.stream.Events()
}

// Close останавливает подписку и освобождает поток изменений.
// После возврата из Close обновлений больше нет
func (s *Subscription) Close() {
	s.stream.Close()
	s.once.Do(s.onClose)
}
