package create_booking

import (
	"time"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	"github.com/turki-wellness/TURKI-BookingService/internal/integrations/whatsapp"
	createBooking "github.com/turki-wellness/TURKI-BookingService/internal/usecase/create_booking"
	"github.com/turki-wellness/TURKI-BookingService/pkg/ptr"
	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`
	BranchID      string  `json:"branchId"`
	ServiceID     string  `json:"serviceId"`
	Date          string  `json:"date"`      // "2026-09-15"
	StartTime     string  `json:"startTime"` // "10:00"
}

// BookingResponse HTTP response model.
// WhatsappMessage и WhatsappLink - готовый текст подтверждения и
// wa.me ссылка на номер филиала: клиент сам отправляет сообщение.
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
	WhatsappMessage string `json:"whatsappMessage"`
	WhatsappLink    string `json:"whatsappLink"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Notes:         ptr.Deref(r.Notes),
		BranchID:      r.BranchID,
		ServiceID:     r.ServiceID,
		Date:          bookingDate,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	message := whatsapp.BuildMessage(whatsapp.ConfirmationData{
		CustomerName:    resp.CustomerName,
		BranchName:      resp.BranchName,
		ServiceName:     resp.ServiceName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		TotalPrice:      resp.TotalPrice,
	})

	return &BookingResponse{
		ID:              resp.ID,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		Notes:           resp.Notes,
		BranchID:        resp.BranchID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		TotalPrice:      resp.TotalPrice,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		WhatsappMessage: message,
		WhatsappLink:    whatsapp.BuildLink(resp.BranchWhatsApp, message),
	}
}
