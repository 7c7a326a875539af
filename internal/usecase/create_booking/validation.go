package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourseID <= 0 {
		return fmt.Errorf("%w: courseID must be positive", ErrInvalidInput)
	}

	if !domain.IsValidTrainingType(req.TrainingType) {
		return fmt.Errorf("%w: unknown training type %q", ErrInvalidInput, req.TrainingType)
	}

	// Пакет обязателен для всего, кроме бесплатной консультации
	if req.PackageType == "" && !req.IsConsultation {
		return fmt.Errorf("%w: packageType is required", ErrInvalidInput)
	}

	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}

	if len(req.Slots) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}

	if req.HoldToken != nil && *req.HoldToken == "" {
		return fmt.Errorf("%w: holdToken must not be empty when provided", ErrInvalidInput)
	}

	return nil
}

// validateSlots проверяет каждую пару (дата, время) выбранных слотов:
// формат даты, будний день, не прошлое, время из сетки слотов
func validateSlots(slots domain.AvailabilityMap, now time.Time) error {
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, date := range slots.Dates() {
		day, err := time.ParseInLocation(domain.DateFormat, date, time.UTC)
		if err != nil {
			return fmt.Errorf("%w: malformed date %q", ErrInvalidDate, date)
		}

		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			return fmt.Errorf("%w: %s is a weekend", ErrInvalidDate, date)
		}

		if day.Before(nowDate) {
			return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, date)
		}

		if len(slots[date]) == 0 {
			return fmt.Errorf("%w: no times selected for %s", ErrInvalidInput, date)
		}

		for _, choice := range slots[date] {
			if !domain.IsValidSlotTime(choice.Time) {
				return fmt.Errorf("%w: %q on %s", ErrInvalidSlotTime, choice.Time, date)
			}
		}
	}

	return nil
}

// countSlotBookings подсчитывает активные бронирования на пару (дата, время).
// Каждое бронирование считается один раз независимо от повторов времени.
func countSlotBookings(date string, t types.TimeString, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Availability.HasSlot(date, t) {
			count++
		}
	}
	return count
}

// countSlotHolds подсчитывает неистекшие holds на пару (дата, время).
// Holds самого пользователя не считаются: его собственный hold не должен
// блокировать конвертацию в бронирование.
func countSlotHolds(date string, t types.TimeString, holds []*domain.SlotHold, now time.Time, excludeUserID int64) int {
	count := 0
	for _, h := range holds {
		if h.UserID == excludeUserID {
			continue
		}
		if h.IsExpired(now) {
			continue
		}
		if h.SlotDate == date && h.SlotTime == t {
			count++
		}
	}
	return count
}
