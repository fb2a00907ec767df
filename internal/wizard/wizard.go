// Package wizard реализует пошаговый сценарий бронирования:
// филиал → услуга → расписание → контакты → подтверждение → отправлено.
//
// Навигация строго линейная: вперед можно только при выполненном предикате
// текущего шага, назад - на один шаг. Все шаги до отправки - чистый выбор
// без побочных эффектов; единственная мутация внешнего состояния -
// Submit, вызывающий создание бронирования.
package wizard

import (
	"context"
	"strings"
	"time"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	"github.com/turki-wellness/TURKI-BookingService/internal/integrations/whatsapp"
	createBooking "github.com/turki-wellness/TURKI-BookingService/internal/usecase/create_booking"
	getAvailableSlots "github.com/turki-wellness/TURKI-BookingService/internal/usecase/get_available_slots"
	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

// Step шаг мастера бронирования
type Step int

const (
	StepChoosingBranch Step = iota + 1
	StepChoosingService
	StepChoosingSchedule
	StepEnteringContactInfo
	StepConfirming
	StepSubmitted
)

// String возвращает имя шага для логов
func (s Step) String() string {
	switch s {
	case StepChoosingBranch:
		return "choosing_branch"
	case StepChoosingService:
		return "choosing_service"
	case StepChoosingSchedule:
		return "choosing_schedule"
	case StepEnteringContactInfo:
		return "entering_contact_info"
	case StepConfirming:
		return "confirming"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Wizard состояние одного сценария бронирования (один клиент, одна сессия)
type Wizard struct {
	catalog  CatalogProvider
	slotsUC  SlotsUseCase
	createUC CreateBookingUseCase
	logger   Logger

	step Step

	branch  *domain.Branch
	service *domain.Service

	date         time.Time
	selectedTime types.TimeString
	slots        []domain.TimeSlot

	customerName  string
	customerPhone string
	notes         string

	result *createBooking.Response
}

// New создает мастер бронирования на первом шаге
func New(catalog CatalogProvider, slotsUC SlotsUseCase, createUC CreateBookingUseCase, logger Logger) *Wizard {
	return &Wizard{
		catalog:  catalog,
		slotsUC:  slotsUC,
		createUC: createUC,
		logger:   logger,
		step:     StepChoosingBranch,
	}
}

// Step возвращает текущий шаг
func (w *Wizard) Step() Step {
	return w.step
}

// Branches возвращает филиалы для выбора
func (w *Wizard) Branches() []domain.Branch {
	return w.catalog.ListBranches()
}

// Services возвращает услуги выбранного филиала
func (w *Wizard) Services() []domain.Service {
	if w.branch == nil {
		return nil
	}
	services, err := w.catalog.ListServicesForBranch(w.branch.ID)
	if err != nil {
		return nil
	}
	return services
}

// Slots возвращает текущую размеченную сетку слотов.
// Недоступные слоты присутствуют с Available=false - интерфейс
// показывает их заблокированными, а не скрывает.
func (w *Wizard) Slots() []domain.TimeSlot {
	return w.slots
}

// SelectBranch выбирает филиал (шаг 1).
// Смена филиала делает ранее выбранную услугу чужой, поэтому услуга,
// время и сетка сбрасываются.
func (w *Wizard) SelectBranch(branchID string) error {
	if w.step != StepChoosingBranch {
		return ErrWrongStep
	}

	branch, err := w.catalog.GetBranch(branchID)
	if err != nil {
		return ErrBranchNotFound
	}

	if w.branch == nil || w.branch.ID != branch.ID {
		w.service = nil
		w.selectedTime = ""
		w.slots = nil
	}
	w.branch = &branch
	w.logger.Info("Wizard: branch selected: %s", branchID)
	return nil
}

// SelectService выбирает услугу (шаг 2).
// Смена услуги меняет длительность, поэтому ранее выбранное время
// и рассчитанная сетка сбрасываются.
func (w *Wizard) SelectService(serviceID string) error {
	if w.step != StepChoosingService {
		return ErrWrongStep
	}

	service, err := w.catalog.GetService(serviceID)
	if err != nil {
		return ErrServiceNotFound
	}
	if service.BranchID != w.branch.ID {
		return ErrServiceNotAtBranch
	}

	if w.service == nil || w.service.ID != service.ID {
		w.selectedTime = ""
		w.slots = nil
	}
	w.service = &service
	w.logger.Info("Wizard: service selected: %s (%d min)", serviceID, service.DurationMinutes)
	return nil
}

// SelectDate выбирает дату (шаг 3) и пересчитывает сетку слотов.
// Смена даты сбрасывает ранее выбранное время: прежний выбор мог
// стать недействительным (stale-selection invalidation).
func (w *Wizard) SelectDate(ctx context.Context, date time.Time) error {
	if w.step != StepChoosingSchedule {
		return ErrWrongStep
	}

	if !date.Equal(w.date) {
		w.selectedTime = ""
	}
	w.date = date

	return w.refreshSlots(ctx)
}

// SelectTime выбирает время начала (шаг 3).
// Принимается только время, доступное в текущей сетке.
func (w *Wizard) SelectTime(t types.TimeString) error {
	if w.step != StepChoosingSchedule {
		return ErrWrongStep
	}
	if w.date.IsZero() {
		return ErrNoDateSelected
	}

	for _, slot := range w.slots {
		if slot.Time.Equal(t) {
			if !slot.Available {
				return ErrTimeNotAvailable
			}
			w.selectedTime = slot.Time
			w.logger.Info("Wizard: time selected: %s", t)
			return nil
		}
	}

	return ErrTimeNotAvailable
}

// SetContactInfo вводит контактные данные (шаг 4).
// Валидация здесь не выполняется: некорректные данные просто не дают
// пройти дальше (CanProceed), без ошибок.
func (w *Wizard) SetContactInfo(name, phone, notes string) error {
	if w.step != StepEnteringContactInfo {
		return ErrWrongStep
	}

	w.customerName = name
	w.customerPhone = phone
	w.notes = notes
	return nil
}

// CanProceed возвращает true, если предикат текущего шага выполнен.
// Невыполненный предикат блокирует кнопку "далее", не поднимая ошибок.
func (w *Wizard) CanProceed() bool {
	switch w.step {
	case StepChoosingBranch:
		return w.branch != nil
	case StepChoosingService:
		return w.service != nil
	case StepChoosingSchedule:
		return !w.date.IsZero() && !w.selectedTime.IsZero()
	case StepEnteringContactInfo:
		return len(strings.TrimSpace(w.customerName)) >= domain.MinCustomerNameLength &&
			len(strings.TrimSpace(w.customerPhone)) >= domain.MinCustomerPhoneLength
	case StepConfirming:
		return true
	default:
		return false
	}
}

// Next переходит на следующий шаг, если текущий завершен.
// Переход на шаг расписания пересчитывает сетку: услуга (длительность)
// могла измениться с прошлого посещения шага.
func (w *Wizard) Next(ctx context.Context) error {
	if w.step >= StepConfirming {
		return ErrWrongStep
	}
	if !w.CanProceed() {
		return ErrStepIncomplete
	}

	w.step++
	w.logger.Info("Wizard: advanced to step %s", w.step)

	if w.step == StepChoosingSchedule && !w.date.IsZero() {
		return w.refreshSlots(ctx)
	}
	return nil
}

// Back возвращается на предыдущий шаг. После отправки пути назад нет.
func (w *Wizard) Back() error {
	if w.step == StepChoosingBranch || w.step == StepSubmitted {
		return ErrWrongStep
	}
	w.step--
	w.logger.Info("Wizard: returned to step %s", w.step)
	return nil
}

// Submit отправляет бронирование (шаг 5 → 6).
// Единственный шаг с внешним побочным эффектом. Мастер переходит
// в Submitted только после успешного создания; ошибка оставляет
// его на шаге подтверждения.
func (w *Wizard) Submit(ctx context.Context) (*createBooking.Response, error) {
	if w.step == StepSubmitted {
		return nil, ErrAlreadySubmitted
	}
	if w.step != StepConfirming {
		return nil, ErrWrongStep
	}

	result, err := w.createUC.Execute(ctx, &createBooking.Request{
		CustomerName:  w.customerName,
		CustomerPhone: w.customerPhone,
		Notes:         w.notes,
		BranchID:      w.branch.ID,
		ServiceID:     w.service.ID,
		Date:          w.date,
		StartTime:     w.selectedTime,
	})
	if err != nil {
		w.logger.Warn("Wizard: submit failed: %v", err)
		return nil, err
	}

	w.result = result
	w.step = StepSubmitted
	w.logger.Info("Wizard: booking submitted: id=%s", result.ID)
	return result, nil
}

// Result возвращает созданное бронирование (после Submit)
func (w *Wizard) Result() *createBooking.Response {
	return w.result
}

// ConfirmationMessage возвращает текст подтверждения
// для отправленного бронирования
func (w *Wizard) ConfirmationMessage() (string, error) {
	if w.step != StepSubmitted || w.result == nil {
		return "", ErrWrongStep
	}

	return whatsapp.BuildMessage(whatsapp.ConfirmationData{
		CustomerName:    w.result.CustomerName,
		BranchName:      w.result.BranchName,
		ServiceName:     w.result.ServiceName,
		Date:            w.result.Date.Format(domain.DateFormat),
		StartTime:       w.result.StartTime.String(),
		DurationMinutes: w.result.DurationMinutes,
		TotalPrice:      w.result.TotalPrice,
	}), nil
}

// ConfirmationLink возвращает wa.me ссылку с текстом подтверждения
func (w *Wizard) ConfirmationLink() (string, error) {
	message, err := w.ConfirmationMessage()
	if err != nil {
		return "", err
	}

	return whatsapp.BuildLink(w.result.BranchWhatsApp, message), nil
}

// refreshSlots пересчитывает сетку слотов для текущих филиала/услуги/даты
func (w *Wizard) refreshSlots(ctx context.Context) error {
	resp, err := w.slotsUC.Execute(ctx, &getAvailableSlots.Request{
		BranchID:  w.branch.ID,
		ServiceID: w.service.ID,
		Date:      w.date,
	})
	if err != nil {
		w.logger.Error("Wizard: failed to refresh slots: %v", err)
		return err
	}

	w.slots = resp.Slots

	// Выбранное время могло стать недоступным после пересчета
	if !w.selectedTime.IsZero() {
		stillAvailable := false
		for _, slot := range w.slots {
			if slot.Time.Equal(w.selectedTime) && slot.Available {
				stillAvailable = true
				break
			}
		}
		if !stillAvailable {
			w.logger.Warn("Wizard: previously selected time %s no longer available", w.selectedTime)
			w.selectedTime = ""
		}
	}

	return nil
}
