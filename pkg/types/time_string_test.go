package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid evening", input: "18:00", want: "18:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), shifted)

	// Переход через полночь запрещён
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("11:00"))
	assert.False(t, TimeString("11:00").IsBefore("09:00"))
	assert.False(t, TimeString("11:00").IsBefore("11:00"))

	assert.True(t, TimeString("18:00").IsAfter("16:00"))
	assert.False(t, TimeString("16:00").IsAfter("16:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("14:00")))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 7, 14, 16, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, TimeString(""), ts)

	assert.Error(t, ts.Scan(42))
}
