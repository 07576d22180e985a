package domain

// SlotsPerDay is the number of fixed booking windows in a business day.
const SlotsPerDay = 5

// ClosedLabel is returned for slot ids outside the daily schedule.
const ClosedLabel = "Closed"

var slotLabels = [SlotsPerDay]string{
	"7:00-9:00",
	"9:00-11:00",
	"11:00-13:00",
	"13:00-15:00",
	"16:00-17:00",
}

// TimeSlot is a computed view of one daily window. It is never persisted.
type TimeSlot struct {
	ID        int
	Label     string
	Available bool
}

// LabelFor returns the time range of slot id, or ClosedLabel for any other value.
func LabelFor(id int) string {
	if !IsValidSlotID(id) {
		return ClosedLabel
	}
	return slotLabels[id]
}

// IsValidSlotID reports whether id is within 0..SlotsPerDay-1.
func IsValidSlotID(id int) bool {
	return id >= 0 && id < SlotsPerDay
}

// BuildSchedule returns all SlotsPerDay slots ordered by id.
// A slot is unavailable when its id is present in bookedIDs; unknown ids are ignored.
func BuildSchedule(bookedIDs []int) []TimeSlot {
	booked := make(map[int]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	slots := make([]TimeSlot, 0, SlotsPerDay)
	for id := 0; id < SlotsPerDay; id++ {
		_, taken := booked[id]
		slots = append(slots, TimeSlot{
			ID:        id,
			Label:     LabelFor(id),
			Available: !taken,
		})
	}
	return slots
}
