package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

// validateRequest сначала проверяет слот, чтобы id вне диапазона
// всегда давал ErrInvalidSlot
func validateRequest(req *Request) error {
	if !domain.IsValidSlotID(req.TimeSlotID) {
		return fmt.Errorf("%w: timeSlotId must be in 0..%d, got %d", ErrInvalidSlot, domain.SlotsPerDay-1, req.TimeSlotID)
	}

	if !domain.IsValidDate(req.Date) {
		return fmt.Errorf("%w: date must be %s, got %q", ErrInvalidInput, domain.DateFormat, req.Date)
	}

	if strings.TrimSpace(req.GarageID) == "" {
		return fmt.Errorf("%w: garageID is required", ErrInvalidInput)
	}

	if len(req.GarageID) > domain.MaxGarageIDLength {
		return fmt.Errorf("%w: garageID is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

func containsSlot(booked []int, slot int) bool {
	for _, id := range booked {
		if id == slot {
			return true
		}
	}
	return false
}
