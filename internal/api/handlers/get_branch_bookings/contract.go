package get_branch_bookings

import (
	"context"

	bookingModels "github.com/turki-wellness/TURKI-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetBranchBookings(ctx context.Context, branchID string) (*bookingModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
