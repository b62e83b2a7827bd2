package domain

import (
	"time"

	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

// ScheduleConfig represents the booking schedule configuration.
// Supports hierarchical configuration:
// 1. Per-photographer (photographer_id set)
// 2. Company-wide (photographer_id NULL)
type ScheduleConfig struct {
	ID                      int64
	PhotographerID          *int64 // NULL = config for the whole crew
	BusinessHoursStart      types.TimeString
	BusinessHoursEnd        types.TimeString
	SlotDurationMinutes     int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsCompanyWide returns true if this is the crew-wide configuration
func (c *ScheduleConfig) IsCompanyWide() bool {
	return c.PhotographerID == nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in
// advance bookings can be made
func (c *ScheduleConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// DefaultScheduleConfig возвращает конфигурацию по умолчанию.
// Используется, когда в БД нет ни одной строки конфигурации.
func DefaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{
		BusinessHoursStart:      DefaultBusinessHoursStart,
		BusinessHoursEnd:        DefaultBusinessHoursEnd,
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}
