package domain

import (
	"time"

	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus converts a string into a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking represents a customer appointment at a branch
type Booking struct {
	// ID выдается хранилищем при создании (UUID), клиент его не задает
	ID string

	CustomerName  string
	CustomerPhone string
	Notes         string

	BranchID  string
	ServiceID string

	// Denormalized data for history: later catalog edits must not
	// retroactively alter stored bookings
	ServiceName string
	TotalPrice  int64

	Date            time.Time // calendar date, no time component
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int

	Status    BookingStatus
	CreatedAt time.Time
}

// IsActive returns true if the booking occupies the schedule.
// Only cancelled bookings are excluded from conflict detection.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsFinished returns true for terminal statuses
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}
