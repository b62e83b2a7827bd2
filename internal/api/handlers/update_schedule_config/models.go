package update_schedule_config

import (
	scheduleConfig "github.com/pixelvan/PhotoBookingService/internal/service/scheduleconfig"
	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

// UpdateScheduleConfigRequest HTTP request model
type UpdateScheduleConfigRequest struct {
	PhotographerID          *int64 `json:"photographerId,omitempty"` // nil = общая конфигурация студии
	BusinessHoursStart      string `json:"businessHoursStart"`       // "09:00"
	BusinessHoursEnd        string `json:"businessHoursEnd"`         // "18:00"
	SlotDurationMinutes     int    `json:"slotDurationMinutes"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleConfigRequest) ToServiceRequest() (*scheduleConfig.UpdateConfigRequest, error) {
	start, err := types.NewTimeStringFromString(r.BusinessHoursStart)
	if err != nil {
		return nil, err
	}

	end, err := types.NewTimeStringFromString(r.BusinessHoursEnd)
	if err != nil {
		return nil, err
	}

	return &scheduleConfig.UpdateConfigRequest{
		PhotographerID:          r.PhotographerID,
		BusinessHoursStart:      start,
		BusinessHoursEnd:        end,
		SlotDurationMinutes:     r.SlotDurationMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}, nil
}
