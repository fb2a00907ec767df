package list_branch_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/turki-wellness/TURKI-BookingService/internal/api/handlers"
	catalogService "github.com/turki-wellness/TURKI-BookingService/internal/service/catalog"
)

const (
	msgBranchNotFound = "филиал не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID := mux.Vars(r)["branchId"]

	result, err := h.service.ListBranchServices(branchID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrBranchNotFound):
			h.logger.Warn("GET /branches/{branchId}/services - Branch not found: branch_id=%s", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		default:
			h.logger.Error("GET /branches/{branchId}/services - Failed to list services: branch_id=%s, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{branchId}/services - Returned %d groups for branch=%s", len(result.Groups), branchID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
