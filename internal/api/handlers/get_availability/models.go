package get_availability

import (
	getAvailability "github.com/m04kA/REBALL-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Days  map[string][]Slot `json:"days"`
}

// Slot модель слота на конкретную дату
type Slot struct {
	ID                  string `json:"id"`
	Time                string `json:"time"`
	Available           bool   `json:"available"`
	Spots               int    `json:"spots"`
	MaxSpots            int    `json:"maxSpots"`
	ConflictingBookings int    `json:"conflictingBookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make(map[string][]Slot, len(resp.Days))
	for date, slots := range resp.Days {
		out := make([]Slot, len(slots))
		for i, s := range slots {
			out[i] = Slot{
				ID:                  s.ID,
				Time:                s.Time.String(),
				Available:           s.Available,
				Spots:               s.Spots,
				MaxSpots:            s.MaxSpots,
				ConflictingBookings: s.ConflictingBookings,
			}
		}
		days[date] = out
	}

	return &AvailabilityResponse{
		Year:  resp.Year,
		Month: int(resp.Month),
		Days:  days,
	}
}
