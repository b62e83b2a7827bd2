package scheduleconfig

import (
	"time"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

// GetConfigRequest запрос на получение конфигурации расписания
type GetConfigRequest struct {
	PhotographerID *int64 // Фильтр по фотографу (опционально)
}

// UpdateConfigRequest запрос на обновление конфигурации расписания
type UpdateConfigRequest struct {
	PhotographerID          *int64           // nil = общая конфигурация студии
	BusinessHoursStart      types.TimeString // Начало рабочего дня
	BusinessHoursEnd        types.TimeString // Конец рабочего дня
	SlotDurationMinutes     int              // Длительность слота
	AdvanceBookingDays      int              // Горизонт бронирования (0 = без ограничений)
	MinBookingNoticeMinutes int              // Минимальное время до начала съёмки
}

// ConfigResponse модель конфигурации в ответе сервиса
type ConfigResponse struct {
	ID                      int64  `json:"id"`
	PhotographerID          *int64 `json:"photographerId,omitempty"`
	BusinessHoursStart      string `json:"businessHoursStart"` // "09:00"
	BusinessHoursEnd        string `json:"businessHoursEnd"`   // "18:00"
	SlotDurationMinutes     int    `json:"slotDurationMinutes"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
	IsDefault               bool   `json:"isDefault"` // true, если вернулись встроенные дефолты
	CreatedAt               string `json:"createdAt,omitempty"`
	UpdatedAt               string `json:"updatedAt,omitempty"`
}

// fromDomainConfig конвертирует доменную модель в response
func fromDomainConfig(c *domain.ScheduleConfig, isDefault bool) *ConfigResponse {
	resp := &ConfigResponse{
		ID:                      c.ID,
		PhotographerID:          c.PhotographerID,
		BusinessHoursStart:      c.BusinessHoursStart.String(),
		BusinessHoursEnd:        c.BusinessHoursEnd.String(),
		SlotDurationMinutes:     c.SlotDurationMinutes,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		IsDefault:               isDefault,
	}

	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	}
	if !c.UpdatedAt.IsZero() {
		resp.UpdatedAt = c.UpdatedAt.Format(time.RFC3339)
	}

	return resp
}
