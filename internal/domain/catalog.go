package domain

// Garage is a bookable branch in a city.
type Garage struct {
	ID      string
	City    string
	Name    string
	Address string
	Phone   *string
}

// WorkingHours is one row of the published opening schedule.
type WorkingHours struct {
	ID        int
	DayLabel  string
	OpenTime  string
	CloseTime string
}

// Package is a service package a customer can pick when booking.
type Package struct {
	ID          string
	Name        string
	Description *string
	Price       int64
}

type BannerKind string

const (
	BannerKindHome     BannerKind = "home"
	BannerKindLookBook BannerKind = "lookbook"
)

func (k BannerKind) IsValid() bool {
	return k == BannerKindHome || k == BannerKindLookBook
}

// Banner is a promotional image shown on the home screen or in the look book.
type Banner struct {
	ID        int64
	Kind      BannerKind
	ImageURL  string
	Title     *string
	SortOrder int
}
