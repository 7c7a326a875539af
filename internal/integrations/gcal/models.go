package gcal

import "time"

// Event модель события тренировки для внешнего календаря
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
}
