package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
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
	bookings  []*domain.Booking
	created   *domain.Booking
	getErr    error
	createErr error
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.created = &created
	return &created, nil
}

func (r *fakeBookingRepo) GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, r.getErr
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

// inlineTxManager выполняет функцию без настоящей транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
		inlineTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	date, err := domain.ParseDate("2026-03-20")
	require.NoError(t, err)
	return &Request{
		UserID:         1,
		PhotographerID: 2,
		PackageID:      3,
		Date:           date,
		StartTime:      "10:30",
		Address:        "447 Sunset Blvd",
		PackageName:    "Golden Hour Session",
		PackagePrice:   250,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeConfigRepo{config: testConfig()}, &fakeCalendar{}, now)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, types.TimeString("10:30"), resp.StartTime)
	assert.Equal(t, 90, resp.DurationMinutes)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Golden Hour Session", repo.created.PackageName)
}

func TestExecute_OverlappingBookingRejected(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)
	date, _ := domain.ParseDate("2026-03-20")

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			BookingDate:     date,
			StartTime:       "10:00",
			DurationMinutes: 90,
			Status:          domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(repo, &fakeConfigRepo{config: testConfig()}, &fakeCalendar{}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_AdjacentBookingAllowed(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)
	date, _ := domain.ParseDate("2026-03-20")

	// Существующая бронь заканчивается ровно в 10:30 - примыкание не конфликт
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			BookingDate:     date,
			StartTime:       "09:00",
			DurationMinutes: 90,
			Status:          domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(repo, &fakeConfigRepo{config: testConfig()}, &fakeCalendar{}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)
	date, _ := domain.ParseDate("2026-03-20")

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			BookingDate:     date,
			StartTime:       "10:00",
			DurationMinutes: 90,
			Status:          domain.StatusCancelledByUser,
		},
	}}
	uc := newTestUseCase(repo, &fakeConfigRepo{config: testConfig()}, &fakeCalendar{}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
}

func TestExecute_BusyCalendarRejected(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	busyStart, err := domain.ToInstant("2026-03-20", "11:00")
	require.NoError(t, err)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{config: testConfig()},
		&fakeCalendar{busy: []domain.BusyInterval{
			{Start: busyStart, End: busyStart.Add(time.Hour)},
		}},
		now,
	)

	_, err = uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CalendarErrorPropagates(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{config: testConfig()},
		&fakeCalendar{err: errors.New("upstream timeout")},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecute_TravelBufferViolationRejected(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)
	date, _ := domain.ParseDate("2026-03-20")

	// Съёмка 09:00-10:30 в 25 км от места кандидата
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			BookingDate:     date,
			StartTime:       "09:00",
			DurationMinutes: 90,
			Status:          domain.StatusConfirmed,
			Latitude:        ptr.Ptr(40.0),
			Longitude:       ptr.Ptr(-74.0),
		},
	}}
	uc := newTestUseCase(repo, &fakeConfigRepo{config: testConfig()}, &fakeCalendar{}, now)

	req := validRequest(t)
	req.Latitude = ptr.Ptr(40.0 + 25.0/111.195)
	req.Longitude = ptr.Ptr(-74.0)

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTravelBufferViolated)
	assert.Contains(t, err.Error(), "travel buffer")

	// Сдвиг на 11:00 оставляет 30 минут на дорогу - бронь проходит
	req.StartTime = "11:00"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_NoCoordinatesSkipsTravelBuffer(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)
	date, _ := domain.ParseDate("2026-03-20")

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			BookingDate:     date,
			StartTime:       "09:00",
			DurationMinutes: 90,
			Status:          domain.StatusConfirmed,
			Latitude:        ptr.Ptr(40.0),
			Longitude:       ptr.Ptr(-74.0),
		},
	}}
	uc := newTestUseCase(repo, &fakeConfigRepo{config: testConfig()}, &fakeCalendar{}, now)

	// Кандидат без координат: буфер не проверяется
	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
}

func TestExecute_OutsideBusinessHoursRejected(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeConfigRepo{config: testConfig()}, &fakeCalendar{}, now)

	req := validRequest(t)
	req.StartTime = "17:00" // 17:00+90мин=18:30 за концом рабочего дня

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	req.StartTime = "08:00" // до начала рабочего дня
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_TooLateToBookToday(t *testing.T) {
	// Сегодня 10:00, minNotice 60: бронь на 10:30 сегодня - отказ
	now := time.Date(2026, 3, 20, 10, 0, 0, 0, domain.BusinessZone)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeConfigRepo{config: testConfig()}, &fakeCalendar{}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.BusinessZone)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeConfigRepo{config: testConfig()}, &fakeCalendar{}, now)

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "missing user", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "missing photographer", mutate: func(r *Request) { r.PhotographerID = 0 }},
		{name: "missing package", mutate: func(r *Request) { r.PackageID = 0 }},
		{name: "missing address", mutate: func(r *Request) { r.Address = "" }},
		{name: "lonely latitude", mutate: func(r *Request) { r.Latitude = ptr.Ptr(40.0) }},
		{name: "lonely longitude", mutate: func(r *Request) { r.Longitude = ptr.Ptr(-74.0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 3, 25, 12, 0, 0, 0, domain.BusinessZone)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeConfigRepo{config: testConfig()}, &fakeCalendar{}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInvalidDate)
}
