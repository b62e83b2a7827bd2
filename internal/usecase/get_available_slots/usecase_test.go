package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	configRepo "github.com/pixelvan/PhotoBookingService/internal/infra/storage/scheduleconfig"
	"github.com/pixelvan/PhotoBookingService/internal/service/travelbuffer"
	"github.com/pixelvan/PhotoBookingService/pkg/ptr"
	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, r.err
}

type fakeConfigRepo struct {
	config *domain.ScheduleConfig
	err    error
}

func (r *fakeConfigRepo) GetConfigWithHierarchy(ctx context.Context, photographerID *int64) (*domain.ScheduleConfig, error) {
	return r.config, r.err
}

type fakeCalendar struct {
	busy []domain.BusyInterval
	err  error
}

func (c *fakeCalendar) GetBusyIntervals(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error) {
	return c.busy, c.err
}

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	configRepo *fakeConfigRepo,
	calendar *fakeCalendar,
	now time.Time,
) *UseCase {
	uc := NewUseCase(
		bookingRepo,
		configRepo,
		calendar,
		travelbuffer.NewValidator(travelbuffer.DefaultPolicy(), nopLogger{}),
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func testConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		BusinessHoursStart:      "09:00",
		BusinessHoursEnd:        "18:00",
		SlotDurationMinutes:     90,
		AdvanceBookingDays:      30,
		MinBookingNoticeMinutes: 60,
	}
}

func TestExecute_HappyPath(t *testing.T) {
	date, err := domain.ParseDate("2026-03-20")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{config: testConfig()},
		&fakeCalendar{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 6)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, "09:00–10:30", resp.Slots[0].DisplayLabel)
}

func TestExecute_BusyIntervalsFilterSlots(t *testing.T) {
	date, err := domain.ParseDate("2026-03-20")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	busyStart, err := domain.ToInstant("2026-03-20", "10:00")
	require.NoError(t, err)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{config: testConfig()},
		&fakeCalendar{busy: []domain.BusyInterval{
			{Start: busyStart, End: busyStart.Add(time.Hour)},
		}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: date})
	require.NoError(t, err)

	// Интервал 10:00-11:00 блокирует слоты 09:00 и 10:30
	starts := make([]types.TimeString, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		starts = append(starts, s.StartTime)
	}
	assert.Equal(t, []types.TimeString{"12:00", "13:30", "15:00", "16:30"}, starts)
}

func TestExecute_CalendarErrorPropagates(t *testing.T) {
	date, err := domain.ParseDate("2026-03-20")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{config: testConfig()},
		&fakeCalendar{err: errors.New("upstream timeout")},
		now,
	)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1, Date: date})
	require.Error(t, err)
	// Ошибка календаря отличима от пустого списка слотов
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
	assert.Contains(t, err.Error(), "upstream timeout")
}

func TestExecute_TravelBufferNarrowsSlots(t *testing.T) {
	date, err := domain.ParseDate("2026-03-20")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	// Существующая съёмка 10:30-12:00 в точке (40.0, -74.0)
	existing := &domain.Booking{
		BookingDate:     date,
		StartTime:       "10:30",
		DurationMinutes: 90,
		Status:          domain.StatusConfirmed,
		Latitude:        ptr.Ptr(40.0),
		Longitude:       ptr.Ptr(-74.0),
	}

	busyStart, err := domain.ToInstant("2026-03-20", "10:30")
	require.NoError(t, err)

	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{existing}},
		&fakeConfigRepo{config: testConfig()},
		&fakeCalendar{busy: []domain.BusyInterval{
			{Start: busyStart, End: busyStart.Add(90 * time.Minute)},
		}},
		now,
	)

	// Запрос с координатами в ~25 км: нужен буфер 30 минут
	farLat := 40.0 + 25.0/111.195
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		Date:      date,
		Latitude:  ptr.Ptr(farLat),
		Longitude: ptr.Ptr(-74.0),
	})
	require.NoError(t, err)

	// Слот 09:00 должен закончиться к 10:00 - отказ; 10:30 занят;
	// 12:00 примыкает к концу съёмки без буфера - отказ; 13:30+ проходят
	starts := make([]types.TimeString, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		starts = append(starts, s.StartTime)
	}
	assert.Equal(t, []types.TimeString{"13:30", "15:00", "16:30"}, starts)
}

func TestExecute_WithoutCoordinatesSkipsTravelBuffer(t *testing.T) {
	date, err := domain.ParseDate("2026-03-20")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	repo := &fakeBookingRepo{err: errors.New("must not be called")}
	uc := newTestUseCase(
		repo,
		&fakeConfigRepo{config: testConfig()},
		&fakeCalendar{},
		now,
	)

	// Без координат travel buffer не проверяется и брони дня не читаются
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: date})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 6)
}

func TestExecute_DefaultConfigFallback(t *testing.T) {
	date, err := domain.ParseDate("2026-03-20")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{err: configRepo.ErrConfigNotFound},
		&fakeCalendar{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: date})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.DurationMinutes)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_DurationOverride(t *testing.T) {
	date, err := domain.ParseDate("2026-03-20")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{config: testConfig()},
		&fakeCalendar{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:          1,
		Date:            date,
		DurationMinutes: ptr.Ptr(120),
	})
	require.NoError(t, err)

	assert.Equal(t, 120, resp.DurationMinutes)
	for _, slot := range resp.Slots {
		assert.Equal(t, 120, slot.DurationMinutes)
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	date, err := domain.ParseDate("2026-03-10")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{config: testConfig()},
		&fakeCalendar{},
		now,
	)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1, Date: date})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateTooFarRejected(t *testing.T) {
	date, err := domain.ParseDate("2026-06-01")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{config: testConfig()}, // advanceBookingDays=30
		&fakeCalendar{},
		now,
	)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1, Date: date})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_CoordinatesMustComeTogether(t *testing.T) {
	date, err := domain.ParseDate("2026-03-20")
	require.NoError(t, err)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{config: testConfig()},
		&fakeCalendar{},
		now,
	)

	_, err = uc.Execute(context.Background(), &Request{
		UserID:   1,
		Date:     date,
		Latitude: ptr.Ptr(40.0), // без долготы
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
