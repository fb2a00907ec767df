package catalog

import "github.com/turki-wellness/TURKI-BookingService/internal/domain"

// catalogFile структура TOML-файла каталога
type catalogFile struct {
	Branches []branchEntry  `toml:"branches"`
	Services []serviceEntry `toml:"services"`
}

type branchEntry struct {
	ID                string `toml:"id"`
	Name              string `toml:"name"`
	ShortName         string `toml:"short_name"`
	Address           string `toml:"address"`
	City              string `toml:"city"`
	WhatsApp          string `toml:"whatsapp"`
	WhatsAppFormatted string `toml:"whatsapp_formatted"`
	MapURL            string `toml:"map_url"`
}

type serviceEntry struct {
	ID              string `toml:"id"`
	BranchID        string `toml:"branch_id"`
	Category        string `toml:"category"`
	Name            string `toml:"name"`
	DurationMinutes int    `toml:"duration_minutes"`
	OriginalPrice   int64  `toml:"original_price"`
	DiscountPrice   int64  `toml:"discount_price"`
}

func (b branchEntry) toDomain() domain.Branch {
	return domain.Branch{
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

func (s serviceEntry) toDomain() domain.Service {
	return domain.Service{
		ID:              s.ID,
		BranchID:        s.BranchID,
		Category:        domain.ServiceCategory(s.Category),
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		OriginalPrice:   s.OriginalPrice,
		DiscountPrice:   s.DiscountPrice,
	}
}
