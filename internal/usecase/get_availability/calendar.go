package get_availability

import (
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// eligibleDates перечисляет даты месяца, на которые вообще возможны слоты:
// будние дни, дата которых не раньше сегодняшней.
// "Прошлое" определяется сравнением календарных дат - слоты сегодняшнего
// дня остаются в таблице независимо от времени суток.
func eligibleDates(year int, month time.Month, now time.Time) []string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	dates := make([]string, 0, 23)

	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		if day.Before(today) {
			continue
		}
		// Тренировки только по будням, без исключений
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, day.Format(domain.DateFormat))
	}

	return dates
}

// generateAvailabilityForMonth строит таблицу доступности месяца.
// Чистая функция: детерминирована при фиксированных входах и now,
// не выполняет I/O и ничего не резервирует.
func generateAvailabilityForMonth(
	year int,
	month time.Month,
	now time.Time,
	bookings []*domain.Booking,
	holds []*domain.SlotHold,
) map[string][]Slot {
	days := make(map[string][]Slot)

	for _, date := range eligibleDates(year, month, now) {
		slots := make([]Slot, 0, len(domain.SlotTimes))

		for _, slotTime := range domain.SlotTimes {
			conflicting := countConflictingBookings(date, slotTime, bookings)
			held := countActiveHolds(date, slotTime, now, holds)

			spots := domain.MaxSpotsPerSlot - conflicting - held
			if spots < 0 {
				spots = 0
			}

			slots = append(slots, Slot{
				ID:                  domain.SlotID(date, slotTime),
				Time:                slotTime,
				Available:           spots > 0,
				Spots:               spots,
				MaxSpots:            domain.MaxSpotsPerSlot,
				ConflictingBookings: conflicting,
			})
		}

		days[date] = slots
	}

	return days
}

// countConflictingBookings подсчитывает бронирования, чья карта availability
// содержит пару (date, time). Каждое бронирование даёт максимум один
// конфликт на слот, даже если время повторяется в его списке.
// Бронирования без карты (nil/битый JSONB) дают ноль конфликтов.
func countConflictingBookings(date string, slotTime types.TimeString, bookings []*domain.Booking) int {
	count := 0

	for _, b := range bookings {
		// Места занимают только pending и confirmed
		if !b.IsActive() {
			continue
		}
		if b.Availability.HasSlot(date, slotTime) {
			count++
		}
	}

	return count
}

// countActiveHolds подсчитывает неистёкшие hold'ы на слот
func countActiveHolds(date string, slotTime types.TimeString, now time.Time, holds []*domain.SlotHold) int {
	count := 0

	for _, h := range holds {
		if h.IsExpired(now) {
			continue
		}
		if h.SlotDate == date && h.SlotTime == slotTime {
			count++
		}
	}

	return count
}
