package models

import (
	"time"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
)

// BookingResponse модель бронирования для слоя сервисов
type BookingResponse struct {
	ID              string
	CustomerName    string
	CustomerPhone   string
	Notes           string
	BranchID        string
	ServiceID       string
	ServiceName     string
	TotalPrice      int64
	Date            time.Time
	StartTime       string
	EndTime         string
	DurationMinutes int
	Status          string
	CreatedAt       time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
	Total    int
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		Notes:           b.Notes,
		BranchID:        b.BranchID,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		TotalPrice:      b.TotalPrice,
		Date:            b.Date,
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    len(out),
	}
}
