package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_PublishBookingCreated(t *testing.T) {
	w := &fakeWriter{}
	now := time.Date(2024, 5, 1, 7, 15, 0, 0, time.UTC)
	p := &KafkaPublisher{writer: w, now: func() time.Time { return now }}

	b := &domain.Booking{ID: 7, Date: "2024-05-01", GarageID: "G1", TimeSlotID: 2}
	require.NoError(t, p.PublishBookingCreated(context.Background(), b))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "G1", string(msg.Key))

	var got BookingCreated
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, TypeBookingCreated, got.Type)
	assert.Equal(t, int64(7), got.BookingID)
	assert.Equal(t, "11:00-13:00", got.SlotLabel)
	assert.True(t, now.Equal(got.OccurredAt))
	assert.NotEmpty(t, got.EventID)

	require.Len(t, msg.Headers, 2)
	assert.Equal(t, got.EventID, string(msg.Headers[1].Value))
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}, now: time.Now}

	err := p.PublishBookingCreated(context.Background(), &domain.Booking{ID: 1})
	require.ErrorIs(t, err, ErrPublish)
	assert.Contains(t, err.Error(), "broker down")
}
