package models

import (
	"time"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

type LoginRequest struct {
	Phone string `json:"phone"`
}

// SelectRequest выбор города и гаража в сессии
type SelectRequest struct {
	City     string  `json:"city"`
	GarageID *string `json:"garageId,omitempty"`
}

type SessionResponse struct {
	Token     string    `json:"token,omitempty"` // only returned on login
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	City      *string   `json:"city,omitempty"`
	GarageID  *string   `json:"garageId,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromDomainSession(s *domain.Session, withToken bool) *SessionResponse {
	resp := &SessionResponse{
		Phone:     s.Phone,
		Name:      s.Name,
		City:      s.City,
		GarageID:  s.GarageID,
		ExpiresAt: s.ExpiresAt,
	}
	if withToken {
		resp.Token = s.Token
	}
	return resp
}
