package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	configRepo "github.com/pixelvan/PhotoBookingService/internal/infra/storage/scheduleconfig"
	"github.com/pixelvan/PhotoBookingService/pkg/ptr"
)

// UseCase use case для создания бронирования съёмки
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	calendar     CalendarClient
	travelBuffer TravelBufferValidator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	calendar CalendarClient,
	travelBuffer TravelBufferValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		calendar:     calendar,
		travelBuffer: travelBuffer,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Все проверки доступности и запись брони идут в одной сериализуемой
// транзакции с блокировкой броней дня (FOR UPDATE): два конкурентных
// запроса не могут оба пройти валидацию по одному и тому же состоянию
// и записать несовместимые брони. Запрос занятости календаря при этом
// остаётся вне транзакционных гарантий - это внешняя система.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, photographer=%d, date=%s, time=%s",
		req.UserID, req.PhotographerID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе бизнеса
	now := uc.timeProvider.Now().In(domain.BusinessZone)

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем проверки и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем конфигурацию расписания с учетом иерархии
		config, err := uc.configRepo.GetConfigWithHierarchy(txCtx, ptr.Ptr(req.PhotographerID))
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateBooking: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		// Если конфигурация не найдена, используем дефолтные значения
		if config == nil {
			config = domain.DefaultScheduleConfig()
			uc.logger.Info("CreateBooking: using default schedule config")
		}

		// 3.2. Валидация даты с учетом конфигурации
		if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 3.3. Слот должен целиком помещаться в рабочие часы
		if err := validateTimeSlot(req.StartTime, config.SlotDurationMinutes, config); err != nil {
			uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
			return err
		}

		// 3.4. Валидация времени бронирования (minBookingNoticeMinutes)
		if err := validateBookingTime(req.Date, req.StartTime, now, config.MinBookingNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return err
		}

		// 3.5. Получаем все активные брони дня с блокировкой (FOR UPDATE)
		filter := domain.DayBookingsFilter{
			Date:            req.Date,
			PhotographerID:  ptr.Ptr(req.PhotographerID),
			IncludeInactive: false, // Только активные бронирования
		}

		sameDayBookings, err := uc.bookingRepo.GetByDate(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.6. Проверяем пересечение с существующими бронями
		overlaps, err := hasOverlappingBooking(req.StartTime, config.SlotDurationMinutes, sameDayBookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check booking overlap: %v", err)
			return fmt.Errorf("%w: failed to check booking overlap: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("CreateBooking: slot %s overlaps an existing booking", req.StartTime)
			return ErrSlotNotAvailable
		}

		// 3.7. Проверяем занятость внешнего календаря на этот слот
		dayStart, dayEnd := domain.DayWindow(req.Date)
		busyIntervals, err := uc.calendar.GetBusyIntervals(txCtx, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateBooking: calendar fetch failed: %v", err)
			return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}

		busy, err := hasBusyOverlap(req.Date, req.StartTime, config.SlotDurationMinutes, busyIntervals)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check busy overlap: %v", err)
			return fmt.Errorf("%w: failed to check busy overlap: %v", ErrInternal, err)
		}
		if busy {
			uc.logger.Warn("CreateBooking: slot %s is busy in the external calendar", req.StartTime)
			return ErrSlotNotAvailable
		}

		// 3.8. Формируем кандидата и проверяем travel buffer против
		// соседних съёмок дня - последняя проверка перед записью
		candidate := &domain.Booking{
			UserID:          req.UserID,
			PhotographerID:  req.PhotographerID,
			PackageID:       req.PackageID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: config.SlotDurationMinutes,
			Status:          domain.StatusConfirmed,
			Address:         req.Address,
			Latitude:        req.Latitude,
			Longitude:       req.Longitude,
			// Денормализация данных пакета
			PackageName:  req.PackageName,
			PackagePrice: req.PackagePrice,
			// Заметки
			Notes: req.Notes,
		}

		if res := uc.travelBuffer.ValidateCandidate(candidate, sameDayBookings); !res.Valid {
			uc.logger.Warn("CreateBooking: travel buffer violated: %s", res.Reason)
			return fmt.Errorf("%w: %s", ErrTravelBufferViolated, res.Reason)
		}

		// 3.9. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, candidate)
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

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		PhotographerID:  result.PhotographerID,
		PackageID:       result.PackageID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Address:         result.Address,
		Latitude:        result.Latitude,
		Longitude:       result.Longitude,
		PackageName:     result.PackageName,
		PackagePrice:    result.PackagePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
