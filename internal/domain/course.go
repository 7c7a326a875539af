package domain

import "time"

// Course represents a static catalog entry referenced by bookings.
// The availability computation never mutates courses.
type Course struct {
	ID              int64
	Name            string
	Position        string // striker, winger, cam, fullback
	DurationMinutes int
	Price           float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
