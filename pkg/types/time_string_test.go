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
		want    string
		wantErr bool
	}{
		{"valid morning", "09:00", "09:00", false},
		{"valid evening", "22:00", "22:00", false},
		{"midnight", "00:00", "00:00", false},
		{"last minute", "23:59", "23:59", false},
		{"missing leading zero normalized", "9:00", "09:00", false},
		{"hour out of range", "25:00", "", true},
		{"minute out of range", "12:60", "", true},
		{"garbage", "noon", "", true},
		{"empty", "", "", true},
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
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	minutes, err := TimeString("09:30").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	minutes, err = TimeString("00:00").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = TimeString("bad").MinutesOfDay()
	require.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
		wantErr bool
	}{
		{"simple add", "09:00", 90, "10:30", false},
		{"across hour", "11:45", 30, "12:15", false},
		{"zero", "14:00", 0, "14:00", false},
		{"negative within day", "14:00", -60, "13:00", false},
		{"exactly midnight forbidden", "23:00", 60, "", true},
		{"past midnight forbidden", "23:30", 60, "", true},
		{"negative underflow", "00:30", -60, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeString(tt.start).AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrTimeOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(b))

	// Сравнения строгие: равные значения не раньше и не позже друг друга
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
	assert.True(t, a.Equal(TimeString("09:00")))
	assert.False(t, a.Equal(b))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30"))
	assert.Equal(t, "10:30", ts.String())

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("15:45:00"))
	assert.Equal(t, "15:45", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15:30")))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 12, 5, 0, 0, time.UTC)))
	assert.Equal(t, "12:05", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("18:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "18:00", v)

	_, err = TimeString("bad").Value()
	require.Error(t, err)
}
