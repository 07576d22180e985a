package models

import (
	"time"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

// RegisterRequest создание или обновление клиента
type RegisterRequest struct {
	Phone string  `json:"phone"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

type UserResponse struct {
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		Phone:     u.Phone,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
