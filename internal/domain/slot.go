package domain

import (
	"fmt"

	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// AvailableSlot вычисляемое состояние слота на конкретную дату.
// Не персистится - пересчитывается на каждый запрос по множеству
// бронирований и активных hold'ов.
type AvailableSlot struct {
	ID                  string // детерминированный "{date}-{time}"
	Time                types.TimeString
	Available           bool
	Spots               int // осталось мест
	MaxSpots            int
	ConflictingBookings int // только бронирования, без hold'ов
}

// SlotID возвращает детерминированный идентификатор слота
func SlotID(date string, t types.TimeString) string {
	return fmt.Sprintf("%s-%s", date, t)
}

// IsFull returns true if the slot has no remaining spots
func (s *AvailableSlot) IsFull() bool {
	return s.Spots <= 0
}

// IsFullyAvailable returns true if no capacity is taken
func (s *AvailableSlot) IsFullyAvailable() bool {
	return s.Spots == s.MaxSpots
}
