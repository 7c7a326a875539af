package domain

import (
	"database/sql/driver"
	"encoding/json"
	"sort"
	"time"

	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// TrainingType represents how a session is run
type TrainingType string

const (
	TrainingOneToOne TrainingType = "1to1"
	TrainingGroup    TrainingType = "group"
)

// IsValidTrainingType проверяет допустимость типа тренировки
func IsValidTrainingType(t TrainingType) bool {
	return t == TrainingOneToOne || t == TrainingGroup
}

// SlotChoice выбранное время внутри одного дня бронирования
type SlotChoice struct {
	Time types.TimeString `json:"time"`
}

// AvailabilityMap карта бронирования: ISO дата (YYYY-MM-DD) -> выбранные слоты.
// Хранится в БД как JSONB колонка.
type AvailabilityMap map[string][]SlotChoice

// HasSlot возвращает true, если карта содержит пару (date, time).
// Повторы одного времени в списке дня считаются одним вхождением.
func (m AvailabilityMap) HasSlot(date string, t types.TimeString) bool {
	for _, choice := range m[date] {
		if choice.Time == t {
			return true
		}
	}
	return false
}

// Dates возвращает отсортированный список дат карты
func (m AvailabilityMap) Dates() []string {
	dates := make([]string, 0, len(m))
	for date := range m {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// FirstSlot возвращает самую раннюю пару (дата, время) карты.
// Используется для создания события в календаре.
func (m AvailabilityMap) FirstSlot() (string, types.TimeString, bool) {
	var (
		bestDate string
		bestTime types.TimeString
		found    bool
	)

	for _, date := range m.Dates() {
		for _, choice := range m[date] {
			if !found || choice.Time.IsBefore(bestTime) {
				bestDate = date
				bestTime = choice.Time
				found = true
			}
		}
		if found {
			return bestDate, bestTime, true
		}
	}

	return "", "", false
}

// Value реализует driver.Valuer для записи JSONB
func (m AvailabilityMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan реализует sql.Scanner для чтения JSONB.
// Некорректные или отсутствующие данные превращаются в пустую карту:
// такое бронирование просто не даёт конфликтов, ошибки не возникает.
func (m *AvailabilityMap) Scan(src interface{}) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*m = AvailabilityMap{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		*m = AvailabilityMap{}
		return nil
	}

	var parsed AvailabilityMap
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed == nil {
		*m = AvailabilityMap{}
		return nil
	}

	*m = parsed
	return nil
}

// Booking represents a training booking in the system
type Booking struct {
	ID           int64
	UserID       int64
	CourseID     int64
	TrainingType TrainingType
	PackageType  string
	TotalPrice   float64
	Status       BookingStatus

	// Availability карта выбранных слотов: дата -> времена
	Availability AvailabilityMap

	IsConsultation bool

	// Denormalized data for history
	CourseName     string
	CoursePosition *string

	// CalendarEventID ссылка на событие во внешнем календаре (после подтверждения)
	CalendarEventID *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies slot capacity
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can be confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCompleted returns true if the booking can be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}
