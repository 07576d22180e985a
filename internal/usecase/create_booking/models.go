package create_booking

// Request запрос на создание бронирования.
// CustomerPhone, PackageID и Notes сохраняются вместе с бронью,
// но на приём брони не влияют
type Request struct {
	Date          string // YYYY-MM-DD
	GarageID      string
	TimeSlotID    int
	CustomerPhone string
	PackageID     *string
	Notes         *string
}
