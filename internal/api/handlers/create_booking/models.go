package create_booking

import (
	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	createBooking "github.com/m04kA/OtoCare-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP модель запроса. Клиент берётся из сессии
type CreateBookingRequest struct {
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	GarageID   string  `json:"garageId" validate:"required,max=64"`
	TimeSlotID *int    `json:"timeSlotId" validate:"required"`
	PackageID  *string `json:"packageId,omitempty" validate:"omitempty,max=64"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// BookingCreatedResponse HTTP модель ответа
type BookingCreatedResponse struct {
	Date          string `json:"date"`
	GarageID      string `json:"garageId"`
	TimeSlotID    int    `json:"timeSlotId"`
	TimeSlotLabel string `json:"timeSlotLabel"`
}

func (r *CreateBookingRequest) ToUseCaseRequest(customerPhone string) *createBooking.Request {
	return &createBooking.Request{
		Date:          r.Date,
		GarageID:      r.GarageID,
		TimeSlotID:    *r.TimeSlotID,
		CustomerPhone: customerPhone,
		PackageID:     r.PackageID,
		Notes:         r.Notes,
	}
}

func NewBookingCreatedResponse(req *createBooking.Request) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		Date:          req.Date,
		GarageID:      req.GarageID,
		TimeSlotID:    req.TimeSlotID,
		TimeSlotLabel: domain.LabelFor(req.TimeSlotID),
	}
}
