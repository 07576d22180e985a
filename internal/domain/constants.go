package domain

import "time"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Business validation constants
const (
	MaxGarageIDLength = 64
	MaxNotesLength    = 500
)

// IsValidDate reports whether s is a calendar date in DateFormat.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}
