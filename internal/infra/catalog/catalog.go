// Package catalog хранит справочные данные: филиалы и их услуги.
// Каталог загружается один раз при старте из TOML-файла и дальше
// не изменяется, поэтому читается без блокировок.
package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
)

// Catalog неизменяемый справочник филиалов и услуг
type Catalog struct {
	branches    []domain.Branch
	services    []domain.Service
	branchByID  map[string]domain.Branch
	serviceByID map[string]domain.Service
	byBranch    map[string][]domain.Service
}

// Load читает и валидирует каталог из TOML-файла
func Load(path string) (*Catalog, error) {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, path, err)
	}
	return build(file)
}

// build собирает индексы и проверяет инварианты справочника
func build(file catalogFile) (*Catalog, error) {
	c := &Catalog{
		branches:    make([]domain.Branch, 0, len(file.Branches)),
		services:    make([]domain.Service, 0, len(file.Services)),
		branchByID:  make(map[string]domain.Branch, len(file.Branches)),
		serviceByID: make(map[string]domain.Service, len(file.Services)),
		byBranch:    make(map[string][]domain.Service),
	}

	if len(file.Branches) == 0 {
		return nil, fmt.Errorf("%w: no branches defined", ErrInvalidCatalog)
	}

	for _, entry := range file.Branches {
		branch := entry.toDomain()
		if branch.ID == "" || branch.Name == "" {
			return nil, fmt.Errorf("%w: branch requires id and name", ErrInvalidCatalog)
		}
		if _, exists := c.branchByID[branch.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate branch id %q", ErrInvalidCatalog, branch.ID)
		}
		c.branchByID[branch.ID] = branch
		c.branches = append(c.branches, branch)
	}

	for _, entry := range file.Services {
		service := entry.toDomain()
		if service.ID == "" {
			return nil, fmt.Errorf("%w: service requires id", ErrInvalidCatalog)
		}
		if _, exists := c.serviceByID[service.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, service.ID)
		}
		if _, ok := c.branchByID[service.BranchID]; !ok {
			return nil, fmt.Errorf("%w: service %q references unknown branch %q",
				ErrInvalidCatalog, service.ID, service.BranchID)
		}
		if err := service.Category.Validate(); err != nil {
			return nil, fmt.Errorf("%w: service %q: %v", ErrInvalidCatalog, service.ID, err)
		}
		if service.DurationMinutes < domain.MinServiceDuration || service.DurationMinutes > domain.MaxServiceDuration {
			return nil, fmt.Errorf("%w: service %q has invalid duration %d",
				ErrInvalidCatalog, service.ID, service.DurationMinutes)
		}
		if service.OriginalPrice < 0 || service.DiscountPrice < 0 {
			return nil, fmt.Errorf("%w: service %q has negative price", ErrInvalidCatalog, service.ID)
		}

		c.serviceByID[service.ID] = service
		c.services = append(c.services, service)
		c.byBranch[service.BranchID] = append(c.byBranch[service.BranchID], service)
	}

	return c, nil
}

// ListBranches возвращает все филиалы в порядке объявления в каталоге
func (c *Catalog) ListBranches() []domain.Branch {
	out := make([]domain.Branch, len(c.branches))
	copy(out, c.branches)
	return out
}

// GetBranch возвращает филиал по ID
func (c *Catalog) GetBranch(branchID string) (domain.Branch, error) {
	branch, ok := c.branchByID[branchID]
	if !ok {
		return domain.Branch{}, ErrBranchNotFound
	}
	return branch, nil
}

// ListServicesForBranch возвращает услуги филиала в порядке каталога
func (c *Catalog) ListServicesForBranch(branchID string) ([]domain.Service, error) {
	if _, ok := c.branchByID[branchID]; !ok {
		return nil, ErrBranchNotFound
	}
	services := c.byBranch[branchID]
	out := make([]domain.Service, len(services))
	copy(out, services)
	return out, nil
}

// GetService возвращает услугу по ID
func (c *Catalog) GetService(serviceID string) (domain.Service, error) {
	service, ok := c.serviceByID[serviceID]
	if !ok {
		return domain.Service{}, ErrServiceNotFound
	}
	return service, nil
}
