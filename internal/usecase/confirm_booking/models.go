package confirm_booking

import (
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
)

// Request модель запроса на подтверждение бронирования
type Request struct {
	BookingID int64 // ID бронирования
	UserID    int64 // ID пользователя (из сессии), владелец бронирования
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	ID              int64
	Status          string
	CalendarEventID *string // ID события в календаре, nil при graceful degradation
	Slots           domain.AvailabilityMap
	UpdatedAt       time.Time
}
