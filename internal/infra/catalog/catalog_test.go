package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
)

const validCatalog = `
[[branches]]
id = "pondok-kelapa"
name = "T.U.R.K.I Pondok Kelapa"
short_name = "Pondok Kelapa"
address = "Jl. Pondok Kelapa Raya"
city = "Jakarta Timur"
whatsapp = "6287777345077"
whatsapp_formatted = "+62 877-7734-5077"

[[branches]]
id = "depok"
name = "T.U.R.K.I Depok"
short_name = "Depok"
address = "Jl. Margonda Raya"
city = "Depok"
whatsapp = "6287777345078"

[[services]]
id = "pk-refleksi-60"
branch_id = "pondok-kelapa"
category = "refleksi"
name = "Refleksi 60 Menit"
duration_minutes = 60
original_price = 95000
discount_price = 76000

[[services]]
id = "pk-lulur-90"
branch_id = "pondok-kelapa"
category = "lulur"
name = "Lulur 90 Menit"
duration_minutes = 90
original_price = 150000
discount_price = 120000

[[services]]
id = "dp-refleksi-60"
branch_id = "depok"
category = "refleksi"
name = "Refleksi 60 Menit"
duration_minutes = 60
original_price = 95000
discount_price = 76000
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeCatalog(t, validCatalog))
	require.NoError(t, err)

	branches := c.ListBranches()
	require.Len(t, branches, 2)
	// Порядок объявления в файле сохраняется
	assert.Equal(t, "pondok-kelapa", branches[0].ID)
	assert.Equal(t, "depok", branches[1].ID)

	branch, err := c.GetBranch("pondok-kelapa")
	require.NoError(t, err)
	assert.Equal(t, "T.U.R.K.I Pondok Kelapa", branch.Name)
	assert.Equal(t, "6287777345077", branch.WhatsApp)

	services, err := c.ListServicesForBranch("pondok-kelapa")
	require.NoError(t, err)
	assert.Len(t, services, 2)

	service, err := c.GetService("dp-refleksi-60")
	require.NoError(t, err)
	assert.Equal(t, "depok", service.BranchID)
	assert.Equal(t, domain.CategoryRefleksi, service.Category)
	assert.Equal(t, int64(76000), service.DiscountPrice)
}

// Производственный каталог: три филиала по 24 услуги, скидка в Бекаси 30%,
// в остальных филиалах 20%
func TestLoad_ProductionCatalog(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "..", "catalog.toml"))
	require.NoError(t, err)

	branches := c.ListBranches()
	require.Len(t, branches, 3)

	for _, branch := range branches {
		services, err := c.ListServicesForBranch(branch.ID)
		require.NoError(t, err)
		require.Len(t, services, 24, "branch %s", branch.ID)

		ratio := int64(80)
		if branch.ID == "bekasi" {
			ratio = 70
		}
		for _, svc := range services {
			assert.Equal(t, svc.OriginalPrice*ratio/100, svc.DiscountPrice,
				"service %s", svc.ID)
		}
	}

	svc, err := c.GetService("bekasi-refleksi-80")
	require.NoError(t, err)
	assert.Equal(t, int64(126000), svc.DiscountPrice)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoad_InvalidCatalog(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no branches",
			content: ``,
		},
		{
			name: "duplicate branch id",
			content: `
[[branches]]
id = "depok"
name = "T.U.R.K.I Depok"

[[branches]]
id = "depok"
name = "T.U.R.K.I Depok 2"
`,
		},
		{
			name: "service references unknown branch",
			content: `
[[branches]]
id = "depok"
name = "T.U.R.K.I Depok"

[[services]]
id = "x-refleksi-60"
branch_id = "bekasi"
category = "refleksi"
name = "Refleksi 60 Menit"
duration_minutes = 60
original_price = 95000
discount_price = 76000
`,
		},
		{
			name: "unknown category",
			content: `
[[branches]]
id = "depok"
name = "T.U.R.K.I Depok"

[[services]]
id = "dp-x"
branch_id = "depok"
category = "pijat-batu"
name = "X"
duration_minutes = 60
original_price = 95000
discount_price = 76000
`,
		},
		{
			name: "zero duration",
			content: `
[[branches]]
id = "depok"
name = "T.U.R.K.I Depok"

[[services]]
id = "dp-x"
branch_id = "depok"
category = "refleksi"
name = "X"
duration_minutes = 0
original_price = 95000
discount_price = 76000
`,
		},
		{
			name: "negative price",
			content: `
[[branches]]
id = "depok"
name = "T.U.R.K.I Depok"

[[services]]
id = "dp-x"
branch_id = "depok"
category = "refleksi"
name = "X"
duration_minutes = 60
original_price = 95000
discount_price = -1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestCatalog_NotFound(t *testing.T) {
	c, err := Load(writeCatalog(t, validCatalog))
	require.NoError(t, err)

	_, err = c.GetBranch("bekasi")
	assert.ErrorIs(t, err, ErrBranchNotFound)

	_, err = c.GetService("nope")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = c.ListServicesForBranch("bekasi")
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

// Выданные слайсы - копии: изменение результата не трогает справочник
func TestCatalog_ReturnsCopies(t *testing.T) {
	c, err := Load(writeCatalog(t, validCatalog))
	require.NoError(t, err)

	branches := c.ListBranches()
	branches[0].Name = "mutated"

	again := c.ListBranches()
	assert.Equal(t, "T.U.R.K.I Pondok Kelapa", again[0].Name)
}
