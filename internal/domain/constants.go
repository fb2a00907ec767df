package domain

import "github.com/turki-wellness/TURKI-BookingService/pkg/types"

// Default schedule grid. Operating hours never cross midnight in this domain.
const (
	DefaultOperatingStart      = types.TimeString("09:00")
	DefaultOperatingEnd        = types.TimeString("22:00")
	DefaultSlotIntervalMinutes = 30
)

// Business validation constants
const (
	MinCustomerNameLength  = 2
	MinCustomerPhoneLength = 8
	MaxCustomerNameLength  = 100
	MaxNotesLength         = 500
	MinServiceDuration     = 5
	MaxServiceDuration     = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих расписание.
// Используется хранилищем при фильтрации бронирований для проверки конфликтов.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих расписание
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
