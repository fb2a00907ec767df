package catalog

import "github.com/turki-wellness/TURKI-BookingService/internal/domain"

// CatalogProvider интерфейс справочника филиалов и услуг
type CatalogProvider interface {
	ListBranches() []domain.Branch
	GetBranch(branchID string) (domain.Branch, error)
	ListServicesForBranch(branchID string) ([]domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
