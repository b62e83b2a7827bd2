package update_schedule_config

import (
	"context"

	scheduleConfig "github.com/pixelvan/PhotoBookingService/internal/service/scheduleconfig"
)

type ConfigService interface {
	UpdateConfig(ctx context.Context, req *scheduleConfig.UpdateConfigRequest) (*scheduleConfig.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
