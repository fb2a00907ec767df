package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Пороговые значения совпадают с предикатами мастера бронирования:
// имя не короче 2 символов после trim, телефон не короче 8.
func validateRequest(req *Request) error {
	if len(strings.TrimSpace(req.CustomerName)) < domain.MinCustomerNameLength {
		return fmt.Errorf("%w: customer name must be at least %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength)
	}

	if len(strings.TrimSpace(req.CustomerName)) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if len(strings.TrimSpace(req.CustomerPhone)) < domain.MinCustomerPhoneLength {
		return fmt.Errorf("%w: customer phone must be at least %d characters",
			ErrInvalidInput, domain.MinCustomerPhoneLength)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if req.BranchID == "" {
		return fmt.Errorf("%w: branchID is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateServiceAtBranch проверяет, что услуга принадлежит филиалу
func validateServiceAtBranch(service domain.Service, branchID string) error {
	if service.BranchID != branchID {
		return ErrServiceNotAtBranch
	}
	return nil
}

// validateWithinOperatingHours проверяет, что интервал [start, end) помещается
// в рабочие часы. Конец услуги может совпадать с закрытием (встык).
func validateWithinOperatingHours(start, end, operatingStart, operatingEnd types.TimeString) error {
	if start.IsBefore(operatingStart) {
		return ErrOutsideOperatingHours
	}
	if end.IsAfter(operatingEnd) {
		return ErrOutsideOperatingHours
	}
	return nil
}

// hasConflict проверяет пересечение предполагаемого интервала с бронированиями.
// Хранилище уже исключило отмененные; строгая проверка полуоткрытых интервалов
// позволяет бронировать встык.
func hasConflict(start, end types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if domain.IntervalsOverlap(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
