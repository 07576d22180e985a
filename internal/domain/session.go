package domain

import "time"

// Session is the state of one logged-in customer.
// It is created on login and removed on logout or expiry.
type Session struct {
	Token     string
	Phone     string
	Name      string
	City      *string
	GarageID  *string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session is no longer valid at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TTL returns the remaining lifetime at now.
func (s *Session) TTL(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}
