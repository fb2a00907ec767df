package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

func booking(start, end string) *Booking {
	return &Booking{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    StatusConfirmed,
	}
}

func slotsByTime(t *testing.T, slots []TimeSlot) map[string]bool {
	t.Helper()
	m := make(map[string]bool, len(slots))
	for _, s := range slots {
		m[s.Time.String()] = s.Available
	}
	return m
}

func TestGenerateSlotTimes(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		interval int
		want     []string
	}{
		{
			name:     "standard hour with half-hour step",
			start:    "09:00",
			end:      "10:00",
			interval: 30,
			want:     []string{"09:00", "09:30", "10:00"},
		},
		{
			name:     "end boundary included",
			start:    "21:00",
			end:      "22:00",
			interval: 30,
			want:     []string{"21:00", "21:30", "22:00"},
		},
		{
			name:     "single slot when start equals end",
			start:    "12:00",
			end:      "12:00",
			interval: 30,
			want:     []string{"12:00"},
		},
		{
			name:     "step not dividing range stops before end",
			start:    "09:00",
			end:      "10:00",
			interval: 45,
			want:     []string{"09:00", "09:45"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlotTimes(types.TimeString(tt.start), types.TimeString(tt.end), tt.interval)
			require.NoError(t, err)

			got := make([]string, len(slots))
			for i, s := range slots {
				got[i] = s.String()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlotTimes_FullDay(t *testing.T) {
	slots, err := GenerateSlotTimes(DefaultOperatingStart, DefaultOperatingEnd, DefaultSlotIntervalMinutes)
	require.NoError(t, err)

	// 09:00 .. 22:00 с шагом 30 минут, включая конечную границу
	assert.Len(t, slots, 27)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "22:00", slots[len(slots)-1].String())
}

func TestGenerateSlotTimes_InvalidGrid(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		interval int
	}{
		{"zero interval", "09:00", "22:00", 0},
		{"negative interval", "09:00", "22:00", -30},
		{"start after end", "22:00", "09:00", 30},
		{"malformed start", "9am", "22:00", 30},
		{"malformed end", "09:00", "25:00", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSlotTimes(types.TimeString(tt.start), types.TimeString(tt.end), tt.interval)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidGrid)
		})
	}
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		startA, endA, startB, endB     string
		want                           bool
	}{
		{"partial overlap", "11:30", "12:00", "11:20", "11:40", true},
		{"contained", "10:00", "12:00", "10:30", "11:00", true},
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"back to back before", "11:30", "12:00", "11:00", "11:30", false},
		{"back to back after", "11:30", "12:00", "12:00", "12:30", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntervalsOverlap(
				types.TimeString(tt.startA), types.TimeString(tt.endA),
				types.TimeString(tt.startB), types.TimeString(tt.endB),
			)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			mirrored := IntervalsOverlap(
				types.TimeString(tt.startB), types.TimeString(tt.endB),
				types.TimeString(tt.startA), types.TimeString(tt.endA),
			)
			assert.Equal(t, tt.want, mirrored)
		})
	}
}

// 60-минутная услуга при одном бронировании 10:00-11:30:
// занятым считается каждый слот, весь интервал которого пересекает бронирование,
// первый свободный после конфликта - 11:30 (встык).
func TestComputeAvailability_SingleBookingBlocksWholeInterval(t *testing.T) {
	existing := []*Booking{booking("10:00", "11:30")}

	slots, err := ComputeAvailability(existing, 60, DefaultOperatingStart, DefaultOperatingEnd, 30)
	require.NoError(t, err)

	avail := slotsByTime(t, slots)

	assert.True(t, avail["09:00"], "09:00-10:00 ends exactly at booking start")
	assert.False(t, avail["09:30"], "09:30-10:30 overlaps booking")
	assert.False(t, avail["10:00"])
	assert.False(t, avail["10:30"])
	assert.False(t, avail["11:00"], "11:00-12:00 still overlaps [10:00,11:30)")
	assert.True(t, avail["11:30"], "back-to-back start at booking end")
	assert.True(t, avail["12:00"])
}

// Слоты, на которых услуга не успевает закончиться до закрытия,
// недоступны независимо от наличия бронирований.
func TestComputeAvailability_PastClosingUnavailable(t *testing.T) {
	slots, err := ComputeAvailability(nil, 90, DefaultOperatingStart, DefaultOperatingEnd, 30)
	require.NoError(t, err)

	avail := slotsByTime(t, slots)

	assert.True(t, avail["20:30"], "20:30+90=22:00, fits exactly")
	assert.False(t, avail["21:00"], "21:00+90=22:30 > closing")
	assert.False(t, avail["21:30"], "21:30+90=23:00 > closing")
	assert.False(t, avail["22:00"], "nothing fits at closing itself")
}

// Слот на конечной границе сетки присутствует в выдаче, но любая
// реальная длительность с него выходит за закрытие.
func TestComputeAvailability_ClosingSlotPresent(t *testing.T) {
	slots, err := ComputeAvailability(nil, 30, DefaultOperatingStart, DefaultOperatingEnd, 30)
	require.NoError(t, err)

	last := slots[len(slots)-1]
	assert.Equal(t, "22:00", last.Time.String())
	assert.False(t, last.Available)

	prev := slots[len(slots)-2]
	assert.Equal(t, "21:30", prev.Time.String())
	assert.True(t, prev.Available, "21:30+30=22:00 fits exactly")
}

// Длительность за полночь не роняет расчет: слот просто недоступен.
func TestComputeAvailability_MidnightOverflowUnavailable(t *testing.T) {
	slots, err := ComputeAvailability(nil, 240, types.TimeString("21:00"), types.TimeString("23:30"), 30)
	require.NoError(t, err)

	for _, s := range slots {
		assert.False(t, s.Available, "slot %s: 240min from %s cannot fit", s.Time, s.Time)
	}
}

func TestComputeAvailability_NoBookingsAllOpenSlotsAvailable(t *testing.T) {
	slots, err := ComputeAvailability([]*Booking{}, 30, DefaultOperatingStart, DefaultOperatingEnd, 30)
	require.NoError(t, err)

	for _, s := range slots {
		if s.Time.Equal(DefaultOperatingEnd) {
			assert.False(t, s.Available)
			continue
		}
		assert.True(t, s.Available, "slot %s", s.Time)
	}
}

// Результат не зависит от порядка бронирований.
func TestComputeAvailability_OrderIndependent(t *testing.T) {
	bookings := []*Booking{
		booking("10:00", "11:30"),
		booking("13:00", "14:00"),
		booking("09:00", "09:30"),
		booking("18:30", "20:00"),
	}

	reference, err := ComputeAvailability(bookings, 60, DefaultOperatingStart, DefaultOperatingEnd, 30)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*Booking, len(bookings))
		copy(shuffled, bookings)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, err := ComputeAvailability(shuffled, 60, DefaultOperatingStart, DefaultOperatingEnd, 30)
		require.NoError(t, err)
		assert.Equal(t, reference, got)
	}
}

func TestComputeAvailability_InvalidDuration(t *testing.T) {
	_, err := ComputeAvailability(nil, 0, DefaultOperatingStart, DefaultOperatingEnd, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = ComputeAvailability(nil, -60, DefaultOperatingStart, DefaultOperatingEnd, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestComputeEndTime(t *testing.T) {
	end, err := ComputeEndTime(types.TimeString("11:30"), 90)
	require.NoError(t, err)
	assert.Equal(t, "13:00", end.String())

	// Выход за полночь - ошибка, а не перенос на следующий день
	_, err = ComputeEndTime(types.TimeString("23:30"), 60)
	require.Error(t, err)
}
