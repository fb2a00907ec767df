package catalog

import (
	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	"github.com/turki-wellness/TURKI-BookingService/internal/service/catalog/models"
)

// Service сервис чтения справочника для HTTP-слоя
type Service struct {
	catalog CatalogProvider
	logger  Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalog CatalogProvider, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// ListBranches возвращает все филиалы
func (s *Service) ListBranches() []models.BranchResponse {
	branches := s.catalog.ListBranches()
	out := make([]models.BranchResponse, len(branches))
	for i, b := range branches {
		out[i] = models.FromDomainBranch(b)
	}
	return out
}

// ListBranchServices возвращает услуги филиала, сгруппированные по категориям.
// Группы идут в фиксированном порядке отображения; пустые категории опускаются.
func (s *Service) ListBranchServices(branchID string) (*models.BranchServicesResponse, error) {
	services, err := s.catalog.ListServicesForBranch(branchID)
	if err != nil {
		s.logger.Warn("ListBranchServices: branch id=%s not found", branchID)
		return nil, ErrBranchNotFound
	}

	byCategory := make(map[domain.ServiceCategory][]models.ServiceResponse)
	for _, svc := range services {
		byCategory[svc.Category] = append(byCategory[svc.Category], models.FromDomainService(svc))
	}

	groups := make([]models.CategoryGroup, 0, len(byCategory))
	for _, category := range domain.ServiceCategories {
		servicesInCategory, ok := byCategory[category]
		if !ok {
			continue
		}
		groups = append(groups, models.CategoryGroup{
			Category: string(category),
			Label:    category.Label(),
			Services: servicesInCategory,
		})
	}

	return &models.BranchServicesResponse{
		BranchID: branchID,
		Groups:   groups,
	}, nil
}
