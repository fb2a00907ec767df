package domain

import "github.com/turki-wellness/TURKI-BookingService/pkg/types"

// TimeSlot represents a candidate appointment start time on the grid.
// Derived on demand, never persisted. Unavailable slots are still
// returned so the caller can render them disabled rather than hidden.
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}
