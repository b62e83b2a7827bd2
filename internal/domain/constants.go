package domain

import "github.com/pixelvan/PhotoBookingService/pkg/types"

// Default configuration values
const (
	DefaultBusinessHoursStart      types.TimeString = "09:00"
	DefaultBusinessHoursEnd        types.TimeString = "18:00"
	DefaultSlotDurationMinutes                      = 90
	DefaultAdvanceBookingDays                       = 0  // 0 = unlimited
	DefaultMinBookingNoticeMinutes                  = 60 // 1 hour
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 30
	MaxSlotDurationMinutes      = 480 // 8 hours
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MinBookingNoticeMinutes     = 0
	MaxBookingNoticeMinutes     = 10080 // 1 week
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxAddressLength            = 300
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований.
// Используется для фильтрации при подсчёте занятости дня.
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByCompany,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
