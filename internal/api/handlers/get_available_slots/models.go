package get_available_slots

import (
	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	getAvailableSlots "github.com/turki-wellness/TURKI-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота: время и признак доступности
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	BranchID        string         `json:"branchId"`
	ServiceID       string         `json:"serviceId"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}
	return &SlotsResponse{
		BranchID:        resp.BranchID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
