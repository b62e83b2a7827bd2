package travelbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	"github.com/pixelvan/PhotoBookingService/pkg/ptr"
	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestValidator() *Validator {
	return NewValidator(DefaultPolicy(), nopLogger{})
}

// ~25 км по широте от базовой точки
const (
	baseLat = 40.0
	baseLng = -74.0
	lat25km = baseLat + 25.0/111.195
	lat5km  = baseLat + 5.0/111.195
	lat15km = baseLat + 15.0/111.195
)

func booking(start types.TimeString, durationMinutes int, status domain.BookingStatus, lat, lng float64) *domain.Booking {
	date, _ := domain.ParseDate("2026-03-15")
	return &domain.Booking{
		BookingDate:     date,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          status,
		Latitude:        ptr.Ptr(lat),
		Longitude:       ptr.Ptr(lng),
	}
}

func candidate(start types.TimeString, durationMinutes int, lat, lng *float64) *domain.Booking {
	date, _ := domain.ParseDate("2026-03-15")
	return &domain.Booking{
		BookingDate:     date,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
		Latitude:        lat,
		Longitude:       lng,
	}
}

func TestValidateCandidate_FarLocationNeedsBuffer(t *testing.T) {
	v := newTestValidator()

	// Съёмка 09:00-10:30 в базовой точке, кандидат в 25 км (буфер 30 мин)
	existing := []*domain.Booking{
		booking("09:00", 90, domain.StatusConfirmed, baseLat, baseLng),
	}

	// 10:30 сразу после конца предыдущей - отказ
	res := v.ValidateCandidate(candidate("10:30", 90, ptr.Ptr(lat25km), ptr.Ptr(baseLng)), existing)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Reason, "previous shoot ends at 10:30")
	assert.Contains(t, res.Reason, "30 min")

	// 11:00 ровно через 30 минут - проходит
	res = v.ValidateCandidate(candidate("11:00", 90, ptr.Ptr(lat25km), ptr.Ptr(baseLng)), existing)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Reason)
}

func TestValidateCandidate_NearLocationNoBuffer(t *testing.T) {
	v := newTestValidator()

	existing := []*domain.Booking{
		booking("09:00", 90, domain.StatusConfirmed, baseLat, baseLng),
	}

	// В 5 км буфер не нужен, примыкающий слот проходит
	res := v.ValidateCandidate(candidate("10:30", 90, ptr.Ptr(lat5km), ptr.Ptr(baseLng)), existing)
	assert.True(t, res.Valid)
}

func TestValidateCandidate_MidLocationFifteenMinutes(t *testing.T) {
	v := newTestValidator()

	existing := []*domain.Booking{
		booking("09:00", 90, domain.StatusConfirmed, baseLat, baseLng),
	}

	// 15 км - средняя зона, буфер 15 минут
	res := v.ValidateCandidate(candidate("10:30", 90, ptr.Ptr(lat15km), ptr.Ptr(baseLng)), existing)
	assert.False(t, res.Valid)

	res = v.ValidateCandidate(candidate("10:45", 90, ptr.Ptr(lat15km), ptr.Ptr(baseLng)), existing)
	assert.True(t, res.Valid)
}

func TestValidateCandidate_FollowingShoot(t *testing.T) {
	v := newTestValidator()

	// Следующая съёмка в 14:00 в 25 км: кандидат должен закончиться
	// не позже 13:30
	existing := []*domain.Booking{
		booking("14:00", 90, domain.StatusConfirmed, lat25km, baseLng),
	}

	// 12:30-14:00 упирается в начало следующей - отказ
	res := v.ValidateCandidate(candidate("12:30", 90, ptr.Ptr(baseLat), ptr.Ptr(baseLng)), existing)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Reason, "next shoot starts at 14:00")

	// 12:00-13:30 оставляет ровно 30 минут - проходит
	res = v.ValidateCandidate(candidate("12:00", 90, ptr.Ptr(baseLat), ptr.Ptr(baseLng)), existing)
	assert.True(t, res.Valid)
}

func TestValidateCandidate_NoCoordinatesAlwaysValid(t *testing.T) {
	v := newTestValidator()

	existing := []*domain.Booking{
		booking("09:00", 90, domain.StatusConfirmed, baseLat, baseLng),
	}

	// Кандидат без координат проходит вне зависимости от соседей
	res := v.ValidateCandidate(candidate("10:30", 90, nil, nil), existing)
	assert.True(t, res.Valid)
}

func TestValidateCandidate_CancelledBookingsIgnored(t *testing.T) {
	v := newTestValidator()

	existing := []*domain.Booking{
		booking("09:00", 90, domain.StatusCancelledByUser, baseLat, baseLng),
		booking("09:00", 90, domain.StatusNoShow, baseLat, baseLng),
		booking("09:00", 90, domain.StatusCompleted, baseLat, baseLng),
	}

	// Ни одна из броней не участвует в проверке буфера
	res := v.ValidateCandidate(candidate("10:30", 90, ptr.Ptr(lat25km), ptr.Ptr(baseLng)), existing)
	assert.True(t, res.Valid)
}

func TestValidateCandidate_NeighborWithoutCoordinatesSkipped(t *testing.T) {
	v := newTestValidator()

	date, _ := domain.ParseDate("2026-03-15")
	existing := []*domain.Booking{
		{
			BookingDate:     date,
			StartTime:       "09:00",
			DurationMinutes: 90,
			Status:          domain.StatusConfirmed,
			// Адрес не геокодирован
		},
	}

	res := v.ValidateCandidate(candidate("10:30", 90, ptr.Ptr(lat25km), ptr.Ptr(baseLng)), existing)
	assert.True(t, res.Valid)
}

func TestFilterSlots(t *testing.T) {
	v := newTestValidator()
	date, err := domain.ParseDate("2026-03-15")
	require.NoError(t, err)

	// Слот 10:30-12:00 здесь отсутствует: пересечение с бронью
	// отбрасывается фильтром занятости до проверки travel buffer
	slots := []domain.AvailableSlot{
		{StartTime: "09:00", EndTime: "10:30", DurationMinutes: 90},
		{StartTime: "12:00", EndTime: "13:30", DurationMinutes: 90},
		{StartTime: "13:30", EndTime: "15:00", DurationMinutes: 90},
	}

	// Существующая съёмка 10:30-12:00 в базовой точке, место запроса в 25 км.
	// Слот 09:00 должен закончиться к 10:00 - отказ; слот 12:00 начинается
	// сразу после конца съёмки - отказ; 13:30 проходит (12:00+30мин=12:30).
	sameDay := []*domain.Booking{
		booking("10:30", 90, domain.StatusConfirmed, baseLat, baseLng),
	}

	got := v.FilterSlots(date, slots, domain.NewCoordinate(lat25km, baseLng), sameDay)

	starts := make([]types.TimeString, 0, len(got))
	for _, s := range got {
		starts = append(starts, s.StartTime)
	}
	assert.Equal(t, []types.TimeString{"13:30"}, starts)
}

func TestFilterSlots_InvalidProposedReturnsUnchanged(t *testing.T) {
	v := newTestValidator()
	date, _ := domain.ParseDate("2026-03-15")

	slots := []domain.AvailableSlot{
		{StartTime: "09:00", EndTime: "10:30", DurationMinutes: 90},
	}
	sameDay := []*domain.Booking{
		booking("09:00", 90, domain.StatusConfirmed, baseLat, baseLng),
	}

	got := v.FilterSlots(date, slots, domain.CoordinateFromPointers(nil, nil), sameDay)
	assert.Equal(t, slots, got)
}
