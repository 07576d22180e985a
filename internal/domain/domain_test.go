package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-05-01"))
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("01-05-2024"))
	assert.False(t, IsValidDate(""))
}

func TestScheduleKey_Topic(t *testing.T) {
	b := &Booking{Date: "2024-05-01", GarageID: "G1", TimeSlotID: 2}

	assert.Equal(t, "bookings:G1:2024-05-01", b.Key().Topic())
	assert.Equal(t, "G1:2024-05-01:2", b.SlotKey())
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := &Session{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, s.IsExpired(now))
	assert.True(t, s.IsExpired(now.Add(time.Minute)))
	assert.Equal(t, time.Minute, s.TTL(now))
}

func TestBannerKind_IsValid(t *testing.T) {
	assert.True(t, BannerKindHome.IsValid())
	assert.True(t, BannerKindLookBook.IsValid())
	assert.False(t, BannerKind("promo").IsValid())
}
