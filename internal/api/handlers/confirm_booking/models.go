package confirm_booking

import (
	confirmBooking "github.com/m04kA/REBALL-BookingService/internal/usecase/confirm_booking"
)

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	ID              int64   `json:"id"`
	Status          string  `json:"status"`
	CalendarEventID *string `json:"calendarEventId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		ID:              resp.ID,
		Status:          resp.Status,
		CalendarEventID: resp.CalendarEventID,
	}
}
