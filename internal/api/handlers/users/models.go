package users

import "github.com/m04kA/OtoCare-BookingService/internal/service/users/models"

// RegisterUserRequest HTTP модель запроса
type RegisterUserRequest struct {
	Phone string  `json:"phone" validate:"required,phone"`
	Name  string  `json:"name" validate:"required,max=128"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

func (r *RegisterUserRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Phone: r.Phone,
		Name:  r.Name,
		Email: r.Email,
	}
}
