package sessions

import "github.com/m04kA/OtoCare-BookingService/internal/service/sessions/models"

// LoginRequest HTTP модель запроса
type LoginRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

// SelectRequest HTTP модель запроса
type SelectRequest struct {
	City     string  `json:"city" validate:"required,max=128"`
	GarageID *string `json:"garageId,omitempty" validate:"omitempty,max=64"`
}

func (r *SelectRequest) ToServiceRequest() *models.SelectRequest {
	return &models.SelectRequest{
		City:     r.City,
		GarageID: r.GarageID,
	}
}
