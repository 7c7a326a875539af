package hold_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	day, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	if err != nil {
		return fmt.Errorf("%w: malformed date %q", ErrInvalidDate, req.Date)
	}

	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		return fmt.Errorf("%w: %s is a weekend", ErrInvalidDate, req.Date)
	}

	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(nowDate) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, req.Date)
	}

	if !domain.IsValidSlotTime(req.Time) {
		return fmt.Errorf("%w: %q", ErrInvalidSlotTime, req.Time)
	}

	return nil
}

// countSlotCapacity подсчитывает занятые места слота: активные
// бронирования плюс неистекшие holds других пользователей
func countSlotCapacity(
	date string,
	t types.TimeString,
	bookings []*domain.Booking,
	holds []*domain.SlotHold,
	now time.Time,
	excludeUserID int64,
) int {
	taken := 0

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Availability.HasSlot(date, t) {
			taken++
		}
	}

	for _, h := range holds {
		if h.UserID == excludeUserID {
			continue
		}
		if h.IsExpired(now) {
			continue
		}
		if h.SlotDate == date && h.SlotTime == t {
			taken++
		}
	}

	return taken
}
