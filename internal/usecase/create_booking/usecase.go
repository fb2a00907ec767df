package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	catalogStore "github.com/turki-wellness/TURKI-BookingService/internal/infra/catalog"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      CatalogProvider
	txManager    TransactionManager
	schedule     Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogProvider,
	txManager TransactionManager,
	schedule Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		txManager:    txManager,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции
// с блокировкой бронирований дня (FOR UPDATE): два конкурентных запроса на
// пересекающиеся интервалы не смогут пройти оба. Интерфейс уже отфильтровал
// занятые слоты, но доверять ему нельзя - между показом сетки и отправкой
// формы слот мог занять другой клиент.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: branch=%s, service=%s, date=%s, time=%s",
		req.BranchID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем филиал
	branch, err := uc.catalog.GetBranch(req.BranchID)
	if err != nil {
		uc.logger.Warn("CreateBooking: branch id=%s not found", req.BranchID)
		return nil, ErrBranchNotFound
	}

	// 4. Получаем услугу
	service, err := uc.catalog.GetService(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogStore.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Услуга должна принадлежать филиалу
	if err := validateServiceAtBranch(service, req.BranchID); err != nil {
		uc.logger.Warn("CreateBooking: service id=%s not at branch id=%s", req.ServiceID, req.BranchID)
		return nil, err
	}

	// 6. Вычисляем конец услуги; выход за полночь - заведомо вне рабочих часов
	endTime, err := domain.ComputeEndTime(req.StartTime, service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: end time overflows midnight: start=%s duration=%d",
			req.StartTime, service.DurationMinutes)
		return nil, ErrOutsideOperatingHours
	}

	// 7. Интервал должен помещаться в рабочие часы
	if err := validateWithinOperatingHours(req.StartTime, endTime,
		uc.schedule.OperatingStart, uc.schedule.OperatingEnd); err != nil {
		uc.logger.Warn("CreateBooking: outside operating hours: %s-%s (hours %s-%s)",
			req.StartTime, endTime, uc.schedule.OperatingStart, uc.schedule.OperatingEnd)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 8. Проверка конфликтов + вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Читаем активные бронирования дня с блокировкой (FOR UPDATE).
		// Ошибка чтения здесь НЕ деградирует до пустого набора: без полного
		// списка нельзя гарантировать отсутствие двойного бронирования.
		bookings, err := uc.bookingRepo.GetByBranchAndDate(txCtx, req.BranchID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 8.2. Проверяем пересечение ВСЕГО интервала услуги с каждым бронированием
		if hasConflict(req.StartTime, endTime, bookings) {
			uc.logger.Warn("CreateBooking: slot conflict: branch=%s date=%s interval=%s-%s",
				req.BranchID, req.Date.Format(domain.DateFormat), req.StartTime, endTime)
			return ErrSlotNotAvailable
		}

		// 8.3. Создаем бронирование со снимком данных услуги.
		// Статус pending: подтверждение - ручной шаг администратора.
		booking := &domain.Booking{
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			Notes:           req.Notes,
			BranchID:        req.BranchID,
			ServiceID:       req.ServiceID,
			ServiceName:     service.Name,
			TotalPrice:      service.DiscountPrice,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s (branch=%s, %s %s-%s)",
		result.ID, result.BranchID, result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime)

	return &Response{
		ID:              result.ID,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		Notes:           result.Notes,
		BranchID:        result.BranchID,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		TotalPrice:      result.TotalPrice,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		BranchName:      branch.Name,
		BranchWhatsApp:  branch.WhatsApp,
	}, nil
}
