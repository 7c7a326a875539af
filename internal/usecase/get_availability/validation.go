package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Year < domain.MinBookingYear || req.Year > domain.MaxBookingYear {
		return fmt.Errorf("%w: year must be between %d and %d",
			ErrInvalidInput, domain.MinBookingYear, domain.MaxBookingYear)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	return nil
}
