package models

import (
	"time"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

// GetGarageBookingsRequest запрос брони гаража на один день
type GetGarageBookingsRequest struct {
	GarageID string `json:"garageId"`
	Date     string `json:"date"`
}

// BookingResponse бронирование в том виде, в каком его видит клиент
type BookingResponse struct {
	ID            int64     `json:"id"`
	Date          string    `json:"date"` // "2024-05-01"
	GarageID      string    `json:"garageId"`
	TimeSlotID    int       `json:"timeSlotId"`
	TimeSlotLabel string    `json:"timeSlotLabel"`
	CustomerPhone string    `json:"customerPhone"`
	PackageID     *string   `json:"packageId,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookingListResponse список бронирований клиента
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// GarageSlotBooking один занятый слот гаража
type GarageSlotBooking struct {
	BookingID     int64   `json:"bookingId"`
	TimeSlotID    int     `json:"timeSlotId"`
	TimeSlotLabel string  `json:"timeSlotLabel"`
	PackageID     *string `json:"packageId,omitempty"`
}

// GarageDayResponse занятые слоты гаража на дату
type GarageDayResponse struct {
	GarageID string              `json:"garageId"`
	Date     string              `json:"date"`
	Bookings []GarageSlotBooking `json:"bookings"`
}

// FromDomainBooking преобразует доменную модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		Date:          b.Date,
		GarageID:      b.GarageID,
		TimeSlotID:    b.TimeSlotID,
		TimeSlotLabel: domain.LabelFor(b.TimeSlotID),
		CustomerPhone: b.CustomerPhone,
		PackageID:     b.PackageID,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainBookingList преобразует список броней в DTO; nil даёт пустой список
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

func FromDomainGarageDay(garageID, date string, bookings []*domain.Booking) *GarageDayResponse {
	resp := &GarageDayResponse{
		GarageID: garageID,
		Date:     date,
		Bookings: make([]GarageSlotBooking, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, GarageSlotBooking{
			BookingID:     b.ID,
			TimeSlotID:    b.TimeSlotID,
			TimeSlotLabel: domain.LabelFor(b.TimeSlotID),
			PackageID:     b.PackageID,
		})
	}

	return resp
}
