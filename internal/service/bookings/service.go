package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	bookingRepo "github.com/turki-wellness/TURKI-BookingService/internal/infra/storage/booking"
	"github.com/turki-wellness/TURKI-BookingService/internal/service/bookings/models"
)

// Service сервис для административной работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	catalog     CatalogProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalog CatalogProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetBranchBookings получает все бронирования филиала для административного
// просмотра - независимо от статуса, новые даты сначала.
func (s *Service) GetBranchBookings(ctx context.Context, branchID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetBranchBookings: fetching bookings for branch=%s", branchID)

	if _, err := s.catalog.GetBranch(branchID); err != nil {
		s.logger.Warn("GetBranchBookings: branch id=%s not found", branchID)
		return nil, ErrBranchNotFound
	}

	bookings, err := s.bookingRepo.GetByBranch(ctx, branchID)
	if err != nil {
		s.logger.Error("GetBranchBookings: repository error for branch=%s: %v", branchID, err)
		return nil, fmt.Errorf("%w: GetBranchBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBranchBookings: successfully fetched %d bookings for branch=%s", len(bookings), branchID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование. Отмена освобождает слот:
// отмененные записи не участвуют в проверке конфликтов.
func (s *Service) Cancel(ctx context.Context, bookingID string) error {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования (pending → confirmed → completed)
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, status string) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, status)

	newStatus, ok := domain.ParseBookingStatus(status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", status, bookingID)
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, newStatus)
	return nil
}
