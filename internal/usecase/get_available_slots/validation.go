package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if !domain.IsValidDate(req.Date) {
		return fmt.Errorf("%w: date must be %s, got %q", ErrInvalidInput, domain.DateFormat, req.Date)
	}

	if strings.TrimSpace(req.GarageID) == "" {
		return fmt.Errorf("%w: garageID is required", ErrInvalidInput)
	}

	if len(req.GarageID) > domain.MaxGarageIDLength {
		return fmt.Errorf("%w: garageID is too long", ErrInvalidInput)
	}

	return nil
}
