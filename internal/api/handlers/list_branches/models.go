package list_branches

import (
	catalogModels "github.com/turki-wellness/TURKI-BookingService/internal/service/catalog/models"
)

// BranchResponse HTTP response model
type BranchResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ShortName         string `json:"shortName"`
	Address           string `json:"address"`
	City              string `json:"city"`
	WhatsApp          string `json:"whatsapp"`
	WhatsAppFormatted string `json:"whatsappFormatted"`
	MapURL            string `json:"mapUrl"`
}

// BranchListResponse HTTP response model
type BranchListResponse struct {
	Branches []BranchResponse `json:"branches"`
	Total    int              `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(branches []catalogModels.BranchResponse) *BranchListResponse {
	out := make([]BranchResponse, len(branches))
	for i, b := range branches {
		out[i] = BranchResponse{
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
	return &BranchListResponse{
		Branches: out,
		Total:    len(out),
	}
}
