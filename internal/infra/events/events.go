package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

const TypeBookingCreated = "booking.created"

var (
	ErrEncode  = errors.New("events: failed to encode event")
	ErrPublish = errors.New("events: failed to publish event")
)

// BookingCreated is published after a booking has been committed.
type BookingCreated struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	BookingID  int64     `json:"bookingId"`
	Date       string    `json:"date"`
	GarageID   string    `json:"garageId"`
	TimeSlotID int       `json:"timeSlotId"`
	SlotLabel  string    `json:"slotLabel"`
	PackageID  *string   `json:"packageId,omitempty"`
}

func newBookingCreated(b *domain.Booking, now time.Time) BookingCreated {
	return BookingCreated{
		EventID:    uuid.NewString(),
		Type:       TypeBookingCreated,
		OccurredAt: now.UTC(),
		BookingID:  b.ID,
		Date:       b.Date,
		GarageID:   b.GarageID,
		TimeSlotID: b.TimeSlotID,
		SlotLabel:  domain.LabelFor(b.TimeSlotID),
		PackageID:  b.PackageID,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes booking events to one topic.
// Messages are keyed by garage so a garage's events stay ordered.
type KafkaPublisher struct {
	writer messageWriter
	now    func() time.Time
}

func NewKafkaPublisher(brokers []string, topic string, writeTimeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			WriteTimeout:           writeTimeout,
			AllowAutoTopicCreation: true,
		},
		now: time.Now,
	}
}

func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, b *domain.Booking) error {
	event := newBookingCreated(b, p.now())

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	// Keyed by garage so one garage's events stay ordered on one partition.
	msg := kafka.Message{
		Key:   []byte(b.GarageID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.EventID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: booking id=%d: %v", ErrPublish, b.ID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. Used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingCreated(context.Context, *domain.Booking) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
