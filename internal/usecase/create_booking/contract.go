package create_booking

import (
	"context"
	"time"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	"github.com/pixelvan/PhotoBookingService/internal/service/travelbuffer"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetConfigWithHierarchy(ctx context.Context, photographerID *int64) (*domain.ScheduleConfig, error)
}

// CalendarClient интерфейс клиента free/busy календаря
type CalendarClient interface {
	GetBusyIntervals(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error)
}

// TravelBufferValidator интерфейс проверки travel buffer
type TravelBufferValidator interface {
	ValidateCandidate(candidate *domain.Booking, sameDayBookings []*domain.Booking) travelbuffer.Result
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
