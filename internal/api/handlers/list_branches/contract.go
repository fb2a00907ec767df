package list_branches

import (
	catalogModels "github.com/turki-wellness/TURKI-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListBranches() []catalogModels.BranchResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
