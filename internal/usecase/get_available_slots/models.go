package get_available_slots

import (
	"time"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

// Schedule параметры сетки слотов (из конфигурации сервиса)
type Schedule struct {
	OperatingStart      types.TimeString
	OperatingEnd        types.TimeString
	SlotIntervalMinutes int
}

// Request модель запроса на получение доступных слотов
type Request struct {
	BranchID  string    // ID филиала
	ServiceID string    // ID услуги (определяет длительность)
	Date      time.Time // Дата (без времени)
}

// Response модель ответа с размеченной сеткой слотов.
// Недоступные слоты включаются в ответ с Available=false:
// интерфейс показывает их заблокированными, а не скрывает.
type Response struct {
	BranchID        string
	ServiceID       string
	Date            time.Time
	DurationMinutes int
	Slots           []domain.TimeSlot
}
