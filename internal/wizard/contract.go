package wizard

import (
	"context"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	createBooking "github.com/turki-wellness/TURKI-BookingService/internal/usecase/create_booking"
	getAvailableSlots "github.com/turki-wellness/TURKI-BookingService/internal/usecase/get_available_slots"
)

// CatalogProvider интерфейс справочника филиалов и услуг
type CatalogProvider interface {
	ListBranches() []domain.Branch
	GetBranch(branchID string) (domain.Branch, error)
	ListServicesForBranch(branchID string) ([]domain.Service, error)
	GetService(serviceID string) (domain.Service, error)
}

// SlotsUseCase интерфейс use case получения доступных слотов
type SlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// CreateBookingUseCase интерфейс use case создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
