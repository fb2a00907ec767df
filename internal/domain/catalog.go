package domain

import "fmt"

// ServiceCategory is a closed enum of service categories
type ServiceCategory string

const (
	CategoryRefleksi         ServiceCategory = "refleksi"
	CategoryFullBodyMassage  ServiceCategory = "full-body-massage"
	CategoryTotokWajah       ServiceCategory = "totok-wajah"
	CategorySpecialTreatment ServiceCategory = "special-treatment"
	CategoryBestSeller       ServiceCategory = "best-seller"
	CategoryLulur            ServiceCategory = "lulur"
)

// ServiceCategories enumerates every category in display order
var ServiceCategories = []ServiceCategory{
	CategoryRefleksi,
	CategoryFullBodyMassage,
	CategoryTotokWajah,
	CategorySpecialTreatment,
	CategoryBestSeller,
	CategoryLulur,
}

// categoryLabels exhaustive mapping of categories to display labels
var categoryLabels = map[ServiceCategory]string{
	CategoryRefleksi:         "Refleksi",
	CategoryFullBodyMassage:  "Full Body Massage",
	CategoryTotokWajah:       "Totok Wajah",
	CategorySpecialTreatment: "Special Treatment",
	CategoryBestSeller:       "Best Seller Treatment",
	CategoryLulur:            "Lulur",
}

// Validate returns an error for an unknown category
func (c ServiceCategory) Validate() error {
	if _, ok := categoryLabels[c]; !ok {
		return fmt.Errorf("unknown service category: %q", string(c))
	}
	return nil
}

// Label returns the display label of the category
func (c ServiceCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Branch represents a physical business location.
// Immutable reference data: loaded at startup, never mutated.
type Branch struct {
	ID                string
	Name              string
	ShortName         string
	Address           string
	City              string
	WhatsApp          string // digits only, international format
	WhatsAppFormatted string // human-readable, e.g. "0877-7734-5077"
	MapURL            string // optional
}

// Service represents a treatment offered at exactly one branch.
// Two branches may offer "the same" treatment as distinct records
// with independent pricing.
type Service struct {
	ID              string
	BranchID        string
	Category        ServiceCategory
	Name            string
	DurationMinutes int
	OriginalPrice   int64 // whole rupiah, non-negative
	DiscountPrice   int64 // whole rupiah, non-negative
}
