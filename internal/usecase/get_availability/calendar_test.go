package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	"github.com/m04kA/REBALL-BookingService/pkg/types"
)

// fixedNow 1 июля 2025, вторник, 10:30 UTC
var fixedNow = time.Date(2025, time.July, 1, 10, 30, 0, 0, time.UTC)

func bookingAt(status domain.BookingStatus, date string, times ...types.TimeString) *domain.Booking {
	choices := make([]domain.SlotChoice, len(times))
	for i, t := range times {
		choices[i] = domain.SlotChoice{Time: t}
	}
	return &domain.Booking{
		Status:       status,
		Availability: domain.AvailabilityMap{date: choices},
	}
}

func findSlot(t *testing.T, days map[string][]Slot, date string, slotTime types.TimeString) Slot {
	t.Helper()
	slots, ok := days[date]
	require.True(t, ok, "date %s missing from availability table", date)
	for _, s := range slots {
		if s.Time == slotTime {
			return s
		}
	}
	t.Fatalf("slot %s not found on %s", slotTime, date)
	return Slot{}
}

func TestEligibleDates_WeekdaysOnOrAfterNow(t *testing.T) {
	dates := eligibleDates(2025, time.July, fixedNow)

	// Июль 2025: 31 день, 1-е - вторник. Будних дней в месяце 23,
	// все на или после 1 июля.
	assert.Len(t, dates, 23)

	for _, d := range dates {
		day, err := time.Parse(domain.DateFormat, d)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, day.Weekday(), "weekend date %s emitted", d)
		assert.NotEqual(t, time.Sunday, day.Weekday(), "weekend date %s emitted", d)
		assert.False(t, day.Before(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
	}

	// Суббота и воскресенье отсутствуют целиком
	assert.NotContains(t, dates, "2025-07-12")
	assert.NotContains(t, dates, "2025-07-13")
}

func TestEligibleDates_PastDaysSkipped_TodayIncluded(t *testing.T) {
	// 15 июля 2025, вторник, поздний вечер
	now := time.Date(2025, time.July, 15, 23, 45, 0, 0, time.UTC)

	dates := eligibleDates(2025, time.July, now)

	assert.NotContains(t, dates, "2025-07-14")
	// Сегодняшний день остается в таблице независимо от времени суток
	assert.Contains(t, dates, "2025-07-15")
	assert.Contains(t, dates, "2025-07-31")
}

func TestEligibleDates_MonthFullyInPast(t *testing.T) {
	now := time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, eligibleDates(2025, time.July, now))
}

func TestGenerate_NoBookings_FullCapacity(t *testing.T) {
	days := generateAvailabilityForMonth(2025, time.July, fixedNow, nil, nil)

	require.Len(t, days, 23)
	for date, slots := range days {
		require.Len(t, slots, len(domain.SlotTimes), "date %s", date)
		for i, s := range slots {
			assert.Equal(t, domain.SlotTimes[i], s.Time, "slot order on %s", date)
			assert.Equal(t, domain.SlotID(date, s.Time), s.ID)
			assert.True(t, s.Available)
			assert.Equal(t, domain.MaxSpotsPerSlot, s.Spots)
			assert.Equal(t, domain.MaxSpotsPerSlot, s.MaxSpots)
			assert.Equal(t, 0, s.ConflictingBookings)
		}
	}
}

func TestGenerate_July2025_WorkedExample(t *testing.T) {
	bookings := []*domain.Booking{
		bookingAt(domain.StatusConfirmed, "2025-07-14", "11:00"),
	}

	days := generateAvailabilityForMonth(2025, time.July, fixedNow, bookings, nil)

	eleven := findSlot(t, days, "2025-07-14", "11:00")
	assert.True(t, eleven.Available)
	assert.Equal(t, 3, eleven.Spots)
	assert.Equal(t, 4, eleven.MaxSpots)
	assert.Equal(t, 1, eleven.ConflictingBookings)

	nine := findSlot(t, days, "2025-07-14", "09:00")
	assert.True(t, nine.Available)
	assert.Equal(t, 4, nine.Spots)
	assert.Equal(t, 4, nine.MaxSpots)
	assert.Equal(t, 0, nine.ConflictingBookings)

	// 12 и 13 июля - суббота и воскресенье
	assert.NotContains(t, days, "2025-07-12")
	assert.NotContains(t, days, "2025-07-13")
}

func TestGenerate_SlotFull_AndClamped(t *testing.T) {
	full := make([]*domain.Booking, 0, domain.MaxSpotsPerSlot+1)
	for i := 0; i < domain.MaxSpotsPerSlot; i++ {
		full = append(full, bookingAt(domain.StatusConfirmed, "2025-07-16", "14:00"))
	}

	days := generateAvailabilityForMonth(2025, time.July, fixedNow, full, nil)
	s := findSlot(t, days, "2025-07-16", "14:00")
	assert.False(t, s.Available)
	assert.Equal(t, 0, s.Spots)
	assert.Equal(t, domain.MaxSpotsPerSlot, s.ConflictingBookings)

	// maxSpots+1 бронирований: spots зажимается в ноль, не уходит в минус
	full = append(full, bookingAt(domain.StatusPending, "2025-07-16", "14:00"))
	days = generateAvailabilityForMonth(2025, time.July, fixedNow, full, nil)
	s = findSlot(t, days, "2025-07-16", "14:00")
	assert.False(t, s.Available)
	assert.Equal(t, 0, s.Spots)
	assert.Equal(t, domain.MaxSpotsPerSlot+1, s.ConflictingBookings)
}

func TestGenerate_StatusFiltering(t *testing.T) {
	bookings := []*domain.Booking{
		bookingAt(domain.StatusPending, "2025-07-17", "09:00"),
		bookingAt(domain.StatusConfirmed, "2025-07-17", "09:00"),
		bookingAt(domain.StatusCancelled, "2025-07-17", "09:00"),
		bookingAt(domain.StatusCompleted, "2025-07-17", "09:00"),
	}

	days := generateAvailabilityForMonth(2025, time.July, fixedNow, bookings, nil)
	s := findSlot(t, days, "2025-07-17", "09:00")

	// pending и confirmed считаются, cancelled и completed - нет
	assert.Equal(t, 2, s.ConflictingBookings)
	assert.Equal(t, 2, s.Spots)
	assert.True(t, s.Available)
}

func TestGenerate_BookingCountsOncePerSlot(t *testing.T) {
	// Дубль времени в списке дня - всё равно один конфликт
	bookings := []*domain.Booking{
		bookingAt(domain.StatusConfirmed, "2025-07-18", "16:00", "16:00"),
	}

	days := generateAvailabilityForMonth(2025, time.July, fixedNow, bookings, nil)
	s := findSlot(t, days, "2025-07-18", "16:00")
	assert.Equal(t, 1, s.ConflictingBookings)
	assert.Equal(t, 3, s.Spots)
}

func TestGenerate_MalformedAvailabilityTolerated(t *testing.T) {
	bookings := []*domain.Booking{
		{Status: domain.StatusConfirmed, Availability: nil},
		{Status: domain.StatusConfirmed, Availability: domain.AvailabilityMap{}},
	}

	days := generateAvailabilityForMonth(2025, time.July, fixedNow, bookings, nil)
	s := findSlot(t, days, "2025-07-14", "11:00")
	assert.Equal(t, 0, s.ConflictingBookings)
	assert.Equal(t, domain.MaxSpotsPerSlot, s.Spots)
}

func TestGenerate_HoldsReduceSpotsButNotConflicts(t *testing.T) {
	holds := []*domain.SlotHold{
		{SlotDate: "2025-07-14", SlotTime: "11:00", ExpiresAt: fixedNow.Add(10 * time.Minute)},
	}
	bookings := []*domain.Booking{
		bookingAt(domain.StatusConfirmed, "2025-07-14", "11:00"),
	}

	days := generateAvailabilityForMonth(2025, time.July, fixedNow, bookings, holds)
	s := findSlot(t, days, "2025-07-14", "11:00")

	assert.Equal(t, 1, s.ConflictingBookings)
	assert.Equal(t, 2, s.Spots) // 4 - 1 бронирование - 1 hold
	assert.True(t, s.Available)
}

func TestGenerate_ExpiredHoldIgnored(t *testing.T) {
	holds := []*domain.SlotHold{
		{SlotDate: "2025-07-14", SlotTime: "11:00", ExpiresAt: fixedNow.Add(-time.Minute)},
		{SlotDate: "2025-07-14", SlotTime: "11:00", ExpiresAt: fixedNow}, // ровно сейчас = истёк
	}

	days := generateAvailabilityForMonth(2025, time.July, fixedNow, nil, holds)
	s := findSlot(t, days, "2025-07-14", "11:00")
	assert.Equal(t, domain.MaxSpotsPerSlot, s.Spots)
}

func TestGenerate_Idempotent(t *testing.T) {
	bookings := []*domain.Booking{
		bookingAt(domain.StatusConfirmed, "2025-07-14", "11:00", "16:00"),
		bookingAt(domain.StatusPending, "2025-07-21", "09:00"),
	}
	holds := []*domain.SlotHold{
		{SlotDate: "2025-07-14", SlotTime: "11:00", ExpiresAt: fixedNow.Add(5 * time.Minute)},
	}

	first := generateAvailabilityForMonth(2025, time.July, fixedNow, bookings, holds)
	second := generateAvailabilityForMonth(2025, time.July, fixedNow, bookings, holds)

	assert.Equal(t, first, second)
}

func TestGenerate_SpotsAlwaysInRange(t *testing.T) {
	bookings := []*domain.Booking{
		bookingAt(domain.StatusConfirmed, "2025-07-14", "09:00", "11:00", "14:00"),
		bookingAt(domain.StatusConfirmed, "2025-07-14", "09:00"),
		bookingAt(domain.StatusPending, "2025-07-15", "18:00"),
	}

	days := generateAvailabilityForMonth(2025, time.July, fixedNow, bookings, nil)
	for date, slots := range days {
		for _, s := range slots {
			assert.GreaterOrEqual(t, s.Spots, 0, "%s %s", date, s.Time)
			assert.LessOrEqual(t, s.Spots, s.MaxSpots, "%s %s", date, s.Time)
			assert.Equal(t, s.Spots > 0, s.Available, "%s %s", date, s.Time)
		}
	}
}
