package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	configRepo "github.com/pixelvan/PhotoBookingService/internal/infra/storage/scheduleconfig"
)

// UseCase use case для получения доступных слотов съёмки.
//
// Конвейер: генерация слотов по рабочим часам -> фильтрация по занятости
// внешнего календаря -> фильтрация по travel buffer (если известны
// координаты места съёмки).
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	calendar     CalendarClient
	travelBuffer TravelBufferValidator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	calendar CalendarClient,
	travelBuffer TravelBufferValidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		calendar:     calendar,
		travelBuffer: travelBuffer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, date=%s, withLocation=%t",
		req.UserID, req.Date.Format(domain.DateFormat), req.Latitude != nil)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе бизнеса - все сравнения
	// дат и времени идут в одном фиксированном смещении
	now := uc.timeProvider.Now().In(domain.BusinessZone)

	// 3. Получаем конфигурацию расписания с учетом иерархии
	config, err := uc.configRepo.GetConfigWithHierarchy(ctx, req.PhotographerID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = domain.DefaultScheduleConfig()
		uc.logger.Info("GetAvailableSlots: using default schedule config")
	}

	slotDuration := config.SlotDurationMinutes
	if req.DurationMinutes != nil {
		slotDuration = *req.DurationMinutes
	}

	// 4. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Генерируем временные слоты по рабочим часам
	slots, err := generateTimeSlots(
		config.BusinessHoursStart,
		config.BusinessHoursEnd,
		slotDuration,
		req.Date,
		now,
		config.MinBookingNoticeMinutes,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 6. Получаем занятость внешнего календаря на окно суток.
	// Ошибка провайдера НЕ превращается в пустой список слотов - вызывающий
	// код должен уметь отличить "нет доступности" от "не смогли проверить".
	dayStart, dayEnd := domain.DayWindow(req.Date)
	busyIntervals, err := uc.calendar.GetBusyIntervals(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: calendar fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	// 7. Отбрасываем слоты, пересекающиеся с занятыми интервалами
	slots, err = filterByBusyIntervals(req.Date, slots, busyIntervals)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: busy filter failed: %v", err)
		return nil, fmt.Errorf("%w: failed to filter by busy intervals: %v", ErrInternal, err)
	}

	// 8. Если известны координаты места съёмки - дополнительно фильтруем
	// по travel buffer относительно других съёмок дня
	if req.Latitude != nil && req.Longitude != nil {
		filter := domain.DayBookingsFilter{
			Date:            req.Date,
			PhotographerID:  req.PhotographerID,
			IncludeInactive: false, // Только активные бронирования
		}

		sameDayBookings, err := uc.bookingRepo.GetByDate(ctx, filter)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		proposed := domain.CoordinateFromPointers(req.Latitude, req.Longitude)
		slots = uc.travelBuffer.FilterSlots(req.Date, slots, proposed, sameDayBookings)
	}

	uc.logger.Info("GetAvailableSlots: %d slots available on %s",
		len(slots), req.Date.Format(domain.DateFormat))

	// Конвертируем в response
	responseSlots := make([]Slot, len(slots))
	for i, slot := range slots {
		responseSlots[i] = Slot{
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			DurationMinutes: slot.DurationMinutes,
			DisplayLabel:    slot.DisplayLabel,
		}
	}

	return &Response{
		Date:            req.Date,
		DurationMinutes: slotDuration,
		Slots:           responseSlots,
	}, nil
}
