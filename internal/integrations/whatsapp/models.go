package whatsapp

// ConfirmationData данные для текста подтверждения бронирования.
// Все поля опциональны: отсутствующие значения рендерятся пустыми,
// форматирование никогда не падает.
type ConfirmationData struct {
	CustomerName    string
	BranchName      string
	ServiceName     string
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	DurationMinutes int
	TotalPrice      int64 // целые рупии
}
