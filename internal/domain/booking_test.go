package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "completed", "cancelled"} {
		status, ok := ParseBookingStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, valid, string(status))
	}

	for _, invalid := range []string{"", "paid", "PENDING", "canceled"} {
		_, ok := ParseBookingStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestBookingStatusPredicates(t *testing.T) {
	tests := []struct {
		status       BookingStatus
		active       bool
		cancellable  bool
		finished     bool
	}{
		{StatusPending, true, true, false},
		{StatusConfirmed, true, true, false},
		{StatusCompleted, true, false, true},
		{StatusCancelled, false, false, true},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		assert.Equal(t, tt.active, b.IsActive(), "IsActive %s", tt.status)
		assert.Equal(t, tt.cancellable, b.CanBeCancelled(), "CanBeCancelled %s", tt.status)
		assert.Equal(t, tt.finished, b.IsFinished(), "IsFinished %s", tt.status)
	}
}
