package get_available_slots

import (
	"fmt"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BranchID == "" {
		return fmt.Errorf("%w: branchID is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateServiceAtBranch проверяет, что услуга принадлежит филиалу.
// Услуги существуют только в рамках своего филиала: "одна и та же" услуга
// в двух филиалах - это две разные записи с независимыми ценами.
func validateServiceAtBranch(service domain.Service, branchID string) error {
	if service.BranchID != branchID {
		return ErrServiceNotAtBranch
	}
	return nil
}
