package domain

import (
	"fmt"
	"time"
)

// Booking reserves one slot of a garage on a date.
// At most one booking exists per (Date, GarageID, TimeSlotID); bookings are never updated.
type Booking struct {
	ID            int64
	Date          string // YYYY-MM-DD
	GarageID      string
	TimeSlotID    int
	CustomerPhone string
	PackageID     *string
	Notes         *string
	CreatedAt     time.Time
}

// ScheduleKey identifies one garage's schedule for one day.
type ScheduleKey struct {
	Date     string
	GarageID string
}

// Topic is the change-feed topic for the schedule.
func (k ScheduleKey) Topic() string {
	return fmt.Sprintf("bookings:%s:%s", k.GarageID, k.Date)
}

// Key returns the schedule the booking belongs to.
func (b *Booking) Key() ScheduleKey {
	return ScheduleKey{Date: b.Date, GarageID: b.GarageID}
}

// SlotKey uniquely identifies the reserved slot.
func (b *Booking) SlotKey() string {
	return fmt.Sprintf("%s:%s:%d", b.GarageID, b.Date, b.TimeSlotID)
}
