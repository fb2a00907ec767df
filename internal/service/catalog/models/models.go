package models

import "github.com/turki-wellness/TURKI-BookingService/internal/domain"

// BranchResponse модель филиала для слоя сервисов
type BranchResponse struct {
	ID                string
	Name              string
	ShortName         string
	Address           string
	City              string
	WhatsApp          string
	WhatsAppFormatted string
	MapURL            string
}

// ServiceResponse модель услуги
type ServiceResponse struct {
	ID              string
	Category        string
	Name            string
	DurationMinutes int
	OriginalPrice   int64
	DiscountPrice   int64
}

// CategoryGroup услуги одной категории с отображаемым названием
type CategoryGroup struct {
	Category string
	Label    string
	Services []ServiceResponse
}

// BranchServicesResponse услуги филиала, сгруппированные по категориям
// в фиксированном порядке отображения
type BranchServicesResponse struct {
	BranchID string
	Groups   []CategoryGroup
}

// FromDomainBranch конвертирует domain.Branch
func FromDomainBranch(b domain.Branch) BranchResponse {
	return BranchResponse{
		ID:                b.ID,
		Name:              b.Name,
		ShortName:         b.ShortName,
		Address:           b.Address,
		City:              b.City,
		WhatsApp:          b.WhatsApp,
		WhatsAppFormatted: b.WhatsAppFormatted,
		MapURL:            b.MapURL,
	}
}

// FromDomainService конвертирует domain.Service
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Category:        string(s.Category),
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		OriginalPrice:   s.OriginalPrice,
		DiscountPrice:   s.DiscountPrice,
	}
}
