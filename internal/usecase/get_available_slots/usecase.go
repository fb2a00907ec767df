package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	catalogStore "github.com/turki-wellness/TURKI-BookingService/internal/infra/catalog"
)

// UseCase use case для получения размеченной сетки слотов
type UseCase struct {
	bookingRepo BookingRepository
	catalog     CatalogProvider
	schedule    Schedule
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogProvider,
	schedule Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		schedule:    schedule,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: branch=%s, service=%s, date=%s",
		req.BranchID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование филиала
	if _, err := uc.catalog.GetBranch(req.BranchID); err != nil {
		uc.logger.Warn("GetAvailableSlots: branch id=%s not found", req.BranchID)
		return nil, ErrBranchNotFound
	}

	// 3. Получаем услугу (длительность определяет проверяемый интервал)
	service, err := uc.catalog.GetService(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogStore.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем, что услуга принадлежит филиалу
	if err := validateServiceAtBranch(service, req.BranchID); err != nil {
		uc.logger.Warn("GetAvailableSlots: service id=%s not at branch id=%s", req.ServiceID, req.BranchID)
		return nil, err
	}

	// 5. Получаем активные бронирования филиала на дату.
	// Сбой чтения деградирует до пустого набора: расчет доступности не должен
	// ронять интерфейс бронирования. Это осознанный компромисс - при недоступном
	// хранилище сетка окажется слишком оптимистичной, а конфликт поймает
	// проверка при создании. Лог уровня ERROR отличает этот случай от
	// "бронирований действительно нет".
	bookings, err := uc.bookingRepo.GetByBranchAndDate(ctx, req.BranchID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: DEGRADED - failed to read bookings for branch=%s date=%s, "+
			"treating schedule as empty: %v", req.BranchID, req.Date.Format(domain.DateFormat), err)
		bookings = []*domain.Booking{}
	}

	// 6. Строим размеченную сетку
	slots, err := domain.ComputeAvailability(
		bookings,
		service.DurationMinutes,
		uc.schedule.OperatingStart,
		uc.schedule.OperatingEnd,
		uc.schedule.SlotIntervalMinutes,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute availability: %v", err)
		return nil, fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for branch=%s, service=%s, date=%s",
		len(slots), req.BranchID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		BranchID:        req.BranchID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
