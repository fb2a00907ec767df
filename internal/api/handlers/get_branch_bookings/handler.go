package get_branch_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/turki-wellness/TURKI-BookingService/internal/api/handlers"
	bookingsService "github.com/turki-wellness/TURKI-BookingService/internal/service/bookings"
)

const (
	msgBranchNotFound = "филиал не найден"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID := mux.Vars(r)["branchId"]

	result, err := h.service.GetBranchBookings(r.Context(), branchID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBranchNotFound):
			h.logger.Warn("GET /branches/{branchId}/bookings - Branch not found: branch_id=%s", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		default:
			h.logger.Error("GET /branches/{branchId}/bookings - Failed to fetch bookings: branch_id=%s, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{branchId}/bookings - Returned %d bookings for branch=%s", result.Total, branchID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
