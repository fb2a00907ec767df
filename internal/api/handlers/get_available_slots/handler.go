package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/turki-wellness/TURKI-BookingService/internal/api/handlers"
	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	getAvailableSlots "github.com/turki-wellness/TURKI-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingServiceID   = "не указан параметр serviceId"
	msgMissingDate        = "не указан параметр date"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBranchNotFound     = "филиал не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceNotAtBranch = "услуга недоступна в выбранном филиале"
	msgInvalidRequest     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/available-slots?serviceId=...&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID := mux.Vars(r)["branchId"]

	serviceID := r.URL.Query().Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /branches/{branchId}/available-slots - Missing serviceId: branch_id=%s", branchID)
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /branches/{branchId}/available-slots - Missing date: branch_id=%s", branchID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /branches/{branchId}/available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		BranchID:  branchID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBranchNotFound):
			h.logger.Warn("GET /branches/{branchId}/available-slots - Branch not found: branch_id=%s", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /branches/{branchId}/available-slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotAtBranch):
			h.logger.Warn("GET /branches/{branchId}/available-slots - Service not at branch: branch_id=%s, service_id=%s", branchID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotAtBranch)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /branches/{branchId}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /branches/{branchId}/available-slots - Failed to compute slots: branch_id=%s, service_id=%s, error=%v",
				branchID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{branchId}/available-slots - Returned %d slots: branch_id=%s, service_id=%s, date=%s",
		len(result.Slots), branchID, serviceID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
