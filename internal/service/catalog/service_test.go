package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	catalogStore "github.com/turki-wellness/TURKI-BookingService/internal/infra/catalog"
)

type stubCatalog struct {
	branches []domain.Branch
	services []domain.Service
}

func (s *stubCatalog) ListBranches() []domain.Branch {
	return s.branches
}

func (s *stubCatalog) GetBranch(branchID string) (domain.Branch, error) {
	for _, b := range s.branches {
		if b.ID == branchID {
			return b, nil
		}
	}
	return domain.Branch{}, catalogStore.ErrBranchNotFound
}

func (s *stubCatalog) ListServicesForBranch(branchID string) ([]domain.Service, error) {
	found := false
	for _, b := range s.branches {
		if b.ID == branchID {
			found = true
			break
		}
	}
	if !found {
		return nil, catalogStore.ErrBranchNotFound
	}
	var out []domain.Service
	for _, svc := range s.services {
		if svc.BranchID == branchID {
			out = append(out, svc)
		}
	}
	return out, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestListBranches(t *testing.T) {
	catalog := &stubCatalog{branches: []domain.Branch{
		{ID: "pondok-kelapa", Name: "T.U.R.K.I Pondok Kelapa"},
		{ID: "depok", Name: "T.U.R.K.I Depok"},
	}}
	svc := NewService(catalog, noopLogger{})

	branches := svc.ListBranches()
	require.Len(t, branches, 2)
	assert.Equal(t, "pondok-kelapa", branches[0].ID)
	assert.Equal(t, "T.U.R.K.I Depok", branches[1].Name)
}

// Группы идут в фиксированном порядке категорий, а не в порядке услуг
// в каталоге; пустые категории опускаются.
func TestListBranchServices_GroupingOrder(t *testing.T) {
	catalog := &stubCatalog{
		branches: []domain.Branch{{ID: "depok", Name: "T.U.R.K.I Depok"}},
		services: []domain.Service{
			{ID: "dp-lulur", BranchID: "depok", Category: domain.CategoryLulur, Name: "Lulur"},
			{ID: "dp-refleksi", BranchID: "depok", Category: domain.CategoryRefleksi, Name: "Refleksi 60"},
			{ID: "dp-totok", BranchID: "depok", Category: domain.CategoryTotokWajah, Name: "Totok Wajah"},
			{ID: "dp-refleksi-90", BranchID: "depok", Category: domain.CategoryRefleksi, Name: "Refleksi 90"},
		},
	}
	svc := NewService(catalog, noopLogger{})

	resp, err := svc.ListBranchServices("depok")
	require.NoError(t, err)

	require.Len(t, resp.Groups, 3)
	assert.Equal(t, "refleksi", resp.Groups[0].Category)
	assert.Equal(t, "Refleksi", resp.Groups[0].Label)
	assert.Len(t, resp.Groups[0].Services, 2)
	assert.Equal(t, "totok-wajah", resp.Groups[1].Category)
	assert.Equal(t, "lulur", resp.Groups[2].Category)
}

func TestListBranchServices_BranchNotFound(t *testing.T) {
	catalog := &stubCatalog{branches: []domain.Branch{{ID: "depok"}}}
	svc := NewService(catalog, noopLogger{})

	_, err := svc.ListBranchServices("solo")
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestListBranchServices_EmptyBranch(t *testing.T) {
	catalog := &stubCatalog{branches: []domain.Branch{{ID: "depok"}}}
	svc := NewService(catalog, noopLogger{})

	resp, err := svc.ListBranchServices("depok")
	require.NoError(t, err)
	assert.Empty(t, resp.Groups)
}
