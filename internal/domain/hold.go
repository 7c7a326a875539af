package domain

import (
	"time"

	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// SlotHold временная бронь слота на время оформления заказа.
// Активный (неистёкший) hold занимает место в слоте так же, как
// бронирование, но живёт ограниченное время и удаляется фоновой чисткой.
type SlotHold struct {
	ID        int64
	SlotDate  string // ISO дата YYYY-MM-DD
	SlotTime  types.TimeString
	UserID    int64
	HoldToken string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the hold no longer occupies capacity at now
func (h *SlotHold) IsExpired(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}
