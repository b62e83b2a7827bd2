package get_available_slots

import (
	"context"
	"time"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает все бронирования на конкретную дату
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов
	GetConfigWithHierarchy(ctx context.Context, photographerID *int64) (*domain.ScheduleConfig, error)
}

// CalendarClient интерфейс клиента free/busy календаря
type CalendarClient interface {
	GetBusyIntervals(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error)
}

// TravelBufferValidator интерфейс проверки travel buffer
type TravelBufferValidator interface {
	FilterSlots(date time.Time, slots []domain.AvailableSlot, proposed domain.Coordinate, sameDayBookings []*domain.Booking) []domain.AvailableSlot
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
