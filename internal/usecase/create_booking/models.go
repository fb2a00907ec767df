package create_booking

import (
	"time"

	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

// Schedule часы работы филиалов (из конфигурации сервиса).
// Шаг сетки здесь не нужен: время начала проверяется на попадание
// в часы работы, привязка к сетке не требуется.
type Schedule struct {
	OperatingStart types.TimeString
	OperatingEnd   types.TimeString
}

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string           // Имя клиента (после trim не короче 2 символов)
	CustomerPhone string           // Телефон клиента (не короче 8 символов)
	Notes         string           // Дополнительные пожелания (опционально)
	BranchID      string           // ID филиала
	ServiceID     string           // ID услуги
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Notes         string
	BranchID      string
	ServiceID     string

	// Денормализованные данные: снимок каталога на момент бронирования
	ServiceName string
	TotalPrice  int64

	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int

	Status    string
	CreatedAt time.Time

	// Данные для WhatsApp-подтверждения
	BranchName     string
	BranchWhatsApp string
}
