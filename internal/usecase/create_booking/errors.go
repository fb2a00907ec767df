package create_booking

import "errors"

var (
	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("create_booking: branch not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotAtBranch возвращается, когда услуга принадлежит другому филиалу
	ErrServiceNotAtBranch = errors.New("create_booking: service does not belong to this branch")

	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrOutsideOperatingHours возвращается, когда услуга не помещается в рабочие часы
	ErrOutsideOperatingHours = errors.New("create_booking: booking does not fit operating hours")

	// ErrSlotNotAvailable возвращается, когда выбранный слот пересекается с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
