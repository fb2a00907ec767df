package create_booking

import (
	"context"
	"time"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByBranchAndDate внутри транзакции читает день с блокировкой (FOR UPDATE)
	GetByBranchAndDate(ctx context.Context, branchID string, date time.Time) ([]*domain.Booking, error)
}

// CatalogProvider интерфейс справочника филиалов и услуг
type CatalogProvider interface {
	GetBranch(branchID string) (domain.Branch, error)
	GetService(serviceID string) (domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
