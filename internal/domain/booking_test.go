package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityMap_HasSlot(t *testing.T) {
	m := AvailabilityMap{
		"2025-07-14": {{Time: "11:00"}, {Time: "11:00"}, {Time: "16:00"}},
	}

	assert.True(t, m.HasSlot("2025-07-14", "11:00"))
	assert.True(t, m.HasSlot("2025-07-14", "16:00"))
	assert.False(t, m.HasSlot("2025-07-14", "09:00"))
	assert.False(t, m.HasSlot("2025-07-15", "11:00"))

	var empty AvailabilityMap
	assert.False(t, empty.HasSlot("2025-07-14", "11:00"))
}

func TestAvailabilityMap_FirstSlot(t *testing.T) {
	m := AvailabilityMap{
		"2025-07-16": {{Time: "09:00"}},
		"2025-07-14": {{Time: "16:00"}, {Time: "11:00"}},
	}

	date, tm, ok := m.FirstSlot()
	require.True(t, ok)
	assert.Equal(t, "2025-07-14", date)
	assert.Equal(t, "11:00", tm.String())

	_, _, ok = AvailabilityMap{}.FirstSlot()
	assert.False(t, ok)
}

func TestAvailabilityMap_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want AvailabilityMap
	}{
		{
			name: "valid payload",
			src:  []byte(`{"2025-07-14":[{"time":"11:00"}]}`),
			want: AvailabilityMap{"2025-07-14": {{Time: "11:00"}}},
		},
		{
			name: "null column",
			src:  nil,
			want: AvailabilityMap{},
		},
		{
			name: "malformed json tolerated",
			src:  []byte(`not json`),
			want: AvailabilityMap{},
		},
		{
			name: "json null tolerated",
			src:  []byte(`null`),
			want: AvailabilityMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m AvailabilityMap
			require.NoError(t, m.Scan(tt.src))
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestBooking_StatusTransitions(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	confirmed := &Booking{Status: StatusConfirmed}
	completed := &Booking{Status: StatusCompleted}
	cancelled := &Booking{Status: StatusCancelled}

	assert.True(t, pending.IsActive())
	assert.True(t, confirmed.IsActive())
	assert.False(t, completed.IsActive())
	assert.False(t, cancelled.IsActive())

	assert.True(t, pending.CanBeConfirmed())
	assert.False(t, confirmed.CanBeConfirmed())

	assert.True(t, pending.CanBeCancelled())
	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.True(t, confirmed.CanBeCompleted())
	assert.False(t, pending.CanBeCompleted())
}

func TestIsValidSlotTime(t *testing.T) {
	for _, st := range SlotTimes {
		assert.True(t, IsValidSlotTime(st))
	}
	assert.False(t, IsValidSlotTime("10:00"))
	assert.False(t, IsValidSlotTime(""))
}
