package domain

import (
	"time"

	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

// AvailableSlot represents a candidate shoot window within business hours.
// Slots are ephemeral: recomputed per request, never persisted.
type AvailableSlot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Available       bool
	DisplayLabel    string // "10:00–11:30", для отображения в UI
}

// BusyInterval represents a calendar-reported occupied time range.
// Read-only, fetched per request from the external calendar, never cached.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the interval has a non-zero intersection with
// [start, end). Touching boundaries do not count as overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}
