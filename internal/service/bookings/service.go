package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	bookingRepo "github.com/pixelvan/PhotoBookingService/internal/infra/storage/booking"
	"github.com/pixelvan/PhotoBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: repo,
		logger:      logger,
	}
}

// GetByID возвращает бронирование по ID с проверкой доступа.
// Пользователь видит только свои бронирования, сотрудники студии - любые.
func (s *Service) GetByID(ctx context.Context, req *models.GetBookingRequest) (*models.BookingResponse, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: failed to get booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Проверка доступа
	if !req.IsStaff && booking.UserID != req.UserID {
		s.logger.Warn("GetByID: user %d denied access to booking %d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings возвращает бронирования пользователя
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		st, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		status = &st
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserBookings: failed to get bookings for user %d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetDayBookings возвращает бронирования на указанную дату (для студии)
func (s *Service) GetDayBookings(ctx context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, filter)
	if err != nil {
		s.logger.Error("GetDayBookings: failed to get bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Пользователь может отменить только свою бронь, сотрудник студии - любую.
// Статус отмены зависит от того, кто отменяет.
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to get booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Проверка доступа
	if !req.IsStaff && booking.UserID != req.UserID {
		s.logger.Warn("Cancel: user %d denied access to booking %d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: status is %s", ErrCannotCancel, booking.Status)
	}

	// Статус отмены зависит от инициатора
	cancelStatus := domain.StatusCancelledByUser
	if req.IsStaff {
		cancelStatus = domain.StatusCancelledByCompany
	}

	if err := s.bookingRepo.Cancel(ctx, req.BookingID, cancelStatus, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: failed to cancel booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking %d cancelled with status %s", req.BookingID, cancelStatus)

	// Перечитываем бронирование, чтобы вернуть актуальное состояние
	updated, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(updated), nil
}

// UpdateStatus обновляет статус бронирования (только для сотрудников студии)
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	// Отмена идёт через Cancel, здесь только рабочие статусы
	if status == domain.StatusCancelledByUser || status == domain.StatusCancelledByCompany {
		return nil, fmt.Errorf("%w: use cancel endpoint for cancellation", ErrInvalidInput)
	}

	if _, err := s.bookingRepo.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: failed to get booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, req.BookingID, status); err != nil {
		s.logger.Error("UpdateStatus: failed to update booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking %d moved to status %s", req.BookingID, status)

	updated, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(updated), nil
}
