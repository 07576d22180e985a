package domain

import "time"

// User is a customer identified by phone number.
type User struct {
	Phone     string
	Name      string
	Email     *string
	CreatedAt time.Time
}
