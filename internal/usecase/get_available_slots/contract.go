package get_available_slots

import (
	"context"
	"time"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByBranchAndDate возвращает НЕотмененные бронирования филиала на дату
	GetByBranchAndDate(ctx context.Context, branchID string, date time.Time) ([]*domain.Booking, error)
}

// CatalogProvider интерфейс справочника филиалов и услуг
type CatalogProvider interface {
	GetBranch(branchID string) (domain.Branch, error)
	GetService(serviceID string) (domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
