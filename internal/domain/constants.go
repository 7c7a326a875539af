package domain

import "github.com/m04kA/REBALL-BookingService/pkg/types"

// Политика слотов REBALL: пять фиксированных стартов в день,
// до четырёх участников на слот, тренировки только по будням.
const (
	MaxSpotsPerSlot = 4
)

// SlotTimes фиксированные времена начала слотов.
// Порядок важен - в этом порядке слоты отдаются наружу.
var SlotTimes = []types.TimeString{
	"09:00",
	"11:00",
	"14:00",
	"16:00",
	"18:00",
}

// IsValidSlotTime проверяет, что время входит в список фиксированных слотов
func IsValidSlotTime(t types.TimeString) bool {
	for _, st := range SlotTimes {
		if st == t {
			return true
		}
	}
	return false
}

// Hold policy
const (
	DefaultHoldTTLMinutes        = 15
	DefaultHoldSweepIntervalSecs = 60
)

// Business validation constants
const (
	MaxCancellationReasonLength = 500
	MinBookingYear              = 2000
	MaxBookingYear              = 2100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих места в слотах.
// Используется при подсчёте конфликтующих бронирований.
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих места в слотах
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
