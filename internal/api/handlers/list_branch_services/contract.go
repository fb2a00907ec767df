package list_branch_services

import (
	catalogModels "github.com/turki-wellness/TURKI-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListBranchServices(branchID string) (*catalogModels.BranchServicesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
