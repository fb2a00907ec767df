package get_branch_bookings

import (
	"time"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	bookingModels "github.com/turki-wellness/TURKI-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	Notes           string `json:"notes,omitempty"`
	BranchID        string `json:"branchId"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	TotalPrice      int64  `json:"totalPrice"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *bookingModels.BookingListResponse) *BookingListResponse {
	out := make([]BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		out[i] = BookingResponse{
			ID:              b.ID,
			CustomerName:    b.CustomerName,
			CustomerPhone:   b.CustomerPhone,
			Notes:           b.Notes,
			BranchID:        b.BranchID,
			ServiceID:       b.ServiceID,
			ServiceName:     b.ServiceName,
			TotalPrice:      b.TotalPrice,
			Date:            b.Date.Format(domain.DateFormat),
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			DurationMinutes: b.DurationMinutes,
			Status:          b.Status,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    resp.Total,
	}
}
