package list_branch_services

import (
	catalogModels "github.com/turki-wellness/TURKI-BookingService/internal/service/catalog/models"
)

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID              string `json:"id"`
	Category        string `json:"category"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	OriginalPrice   int64  `json:"originalPrice"`
	DiscountPrice   int64  `json:"discountPrice"`
}

// CategoryGroupResponse группа услуг одной категории
type CategoryGroupResponse struct {
	Category string            `json:"category"`
	Label    string            `json:"label"`
	Services []ServiceResponse `json:"services"`
}

// BranchServicesResponse HTTP response model
type BranchServicesResponse struct {
	BranchID string                  `json:"branchId"`
	Groups   []CategoryGroupResponse `json:"groups"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *catalogModels.BranchServicesResponse) *BranchServicesResponse {
	groups := make([]CategoryGroupResponse, len(resp.Groups))
	for i, g := range resp.Groups {
		services := make([]ServiceResponse, len(g.Services))
		for j, s := range g.Services {
			services[j] = ServiceResponse{
				ID:              s.ID,
				Category:        s.Category,
				Name:            s.Name,
				DurationMinutes: s.DurationMinutes,
				OriginalPrice:   s.OriginalPrice,
				DiscountPrice:   s.DiscountPrice,
			}
		}
		groups[i] = CategoryGroupResponse{
			Category: g.Category,
			Label:    g.Label,
			Services: services,
		}
	}
	return &BranchServicesResponse{
		BranchID: resp.BranchID,
		Groups:   groups,
	}
}
