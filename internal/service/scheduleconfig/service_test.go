package scheduleconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	configRepo "github.com/pixelvan/PhotoBookingService/internal/infra/storage/scheduleconfig"
	"github.com/pixelvan/PhotoBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeConfigRepo struct {
	config   *domain.ScheduleConfig
	err      error
	upserted *domain.ScheduleConfig
}

func (r *fakeConfigRepo) GetConfigWithHierarchy(ctx context.Context, photographerID *int64) (*domain.ScheduleConfig, error) {
	return r.config, r.err
}

func (r *fakeConfigRepo) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.upserted = config
	stored := *config
	stored.ID = 1
	return &stored, nil
}

func validUpdateRequest() *UpdateConfigRequest {
	return &UpdateConfigRequest{
		BusinessHoursStart:      "10:00",
		BusinessHoursEnd:        "19:00",
		SlotDurationMinutes:     60,
		AdvanceBookingDays:      14,
		MinBookingNoticeMinutes: 120,
	}
}

func TestGetConfig(t *testing.T) {
	repo := &fakeConfigRepo{config: &domain.ScheduleConfig{
		ID:                      5,
		BusinessHoursStart:      "09:00",
		BusinessHoursEnd:        "18:00",
		SlotDurationMinutes:     90,
		AdvanceBookingDays:      30,
		MinBookingNoticeMinutes: 60,
	}}
	svc := NewService(repo, nopLogger{})

	got, err := svc.GetConfig(context.Background(), &GetConfigRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "09:00", got.BusinessHoursStart)
	assert.False(t, got.IsDefault)
}

func TestGetConfig_FallsBackToDefaults(t *testing.T) {
	repo := &fakeConfigRepo{err: configRepo.ErrConfigNotFound}
	svc := NewService(repo, nopLogger{})

	got, err := svc.GetConfig(context.Background(), &GetConfigRequest{})
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, got.SlotDurationMinutes)
}

func TestUpdateConfig(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, nopLogger{})

	req := validUpdateRequest()
	req.PhotographerID = ptr.Ptr(int64(7))

	got, err := svc.UpdateConfig(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "10:00", got.BusinessHoursStart)
	assert.Equal(t, 60, got.SlotDurationMinutes)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, int64(7), *repo.upserted.PhotographerID)
}

func TestUpdateConfig_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *UpdateConfigRequest)
	}{
		{
			name:   "malformed start time",
			mutate: func(req *UpdateConfigRequest) { req.BusinessHoursStart = "25:00" },
		},
		{
			name:   "malformed end time",
			mutate: func(req *UpdateConfigRequest) { req.BusinessHoursEnd = "19h00" },
		},
		{
			name: "start after end",
			mutate: func(req *UpdateConfigRequest) {
				req.BusinessHoursStart = "19:00"
				req.BusinessHoursEnd = "10:00"
			},
		},
		{
			name: "start equals end",
			mutate: func(req *UpdateConfigRequest) {
				req.BusinessHoursStart = "10:00"
				req.BusinessHoursEnd = "10:00"
			},
		},
		{
			name:   "slot duration too short",
			mutate: func(req *UpdateConfigRequest) { req.SlotDurationMinutes = 15 },
		},
		{
			name:   "slot duration too long",
			mutate: func(req *UpdateConfigRequest) { req.SlotDurationMinutes = 720 },
		},
		{
			name:   "negative advance booking days",
			mutate: func(req *UpdateConfigRequest) { req.AdvanceBookingDays = -1 },
		},
		{
			name:   "advance booking days over a year",
			mutate: func(req *UpdateConfigRequest) { req.AdvanceBookingDays = 400 },
		},
		{
			name:   "negative booking notice",
			mutate: func(req *UpdateConfigRequest) { req.MinBookingNoticeMinutes = -10 },
		},
		{
			name:   "booking notice over a week",
			mutate: func(req *UpdateConfigRequest) { req.MinBookingNoticeMinutes = 20000 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeConfigRepo{}, nopLogger{})
			req := validUpdateRequest()
			tt.mutate(req)

			_, err := svc.UpdateConfig(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
