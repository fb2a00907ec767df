package wizard

import "errors"

var (
	// ErrWrongStep возвращается при действии, недопустимом на текущем шаге
	ErrWrongStep = errors.New("wizard: action not allowed at current step")

	// ErrStepIncomplete возвращается при попытке перейти вперед,
	// когда текущий шаг не завершен
	ErrStepIncomplete = errors.New("wizard: current step is not complete")

	// ErrAlreadySubmitted возвращается при действиях после отправки
	ErrAlreadySubmitted = errors.New("wizard: booking already submitted")

	// ErrBranchNotFound возвращается при выборе несуществующего филиала
	ErrBranchNotFound = errors.New("wizard: branch not found")

	// ErrServiceNotFound возвращается при выборе несуществующей услуги
	ErrServiceNotFound = errors.New("wizard: service not found")

	// ErrServiceNotAtBranch возвращается, когда услуга принадлежит другому филиалу
	ErrServiceNotAtBranch = errors.New("wizard: service does not belong to selected branch")

	// ErrTimeNotAvailable возвращается при выборе недоступного времени
	ErrTimeNotAvailable = errors.New("wizard: selected time is not available")

	// ErrNoDateSelected возвращается при выборе времени до выбора даты
	ErrNoDateSelected = errors.New("wizard: no date selected")
)
