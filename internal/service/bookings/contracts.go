package bookings

import (
	"context"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByBranch(ctx context.Context, branchID string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Cancel(ctx context.Context, id string) error
}

// CatalogProvider интерфейс справочника (проверка существования филиала)
type CatalogProvider interface {
	GetBranch(branchID string) (domain.Branch, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
