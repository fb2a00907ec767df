package list_branches

import (
	"net/http"

	"github.com/turki-wellness/TURKI-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/branches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branches := h.service.ListBranches()

	h.logger.Info("GET /branches - Returned %d branches", len(branches))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(branches))
}
