package domain

import (
	"time"

	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending            BookingStatus = "pending"
	StatusConfirmed          BookingStatus = "confirmed"
	StatusInProgress         BookingStatus = "in_progress"
	StatusCompleted          BookingStatus = "completed"
	StatusCancelledByUser    BookingStatus = "cancelled_by_user"
	StatusCancelledByCompany BookingStatus = "cancelled_by_company"
	StatusNoShow             BookingStatus = "no_show"
)

// Booking represents an on-location photo shoot booking
type Booking struct {
	ID              int64
	UserID          int64
	PhotographerID  int64
	PackageID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Место съёмки. Координаты опциональны: не каждый адрес геокодирован,
	// отсутствие координат отключает проверку travel buffer для этой брони
	Address   string
	Latitude  *float64
	Longitude *float64

	// Denormalized data for history
	PackageName  string
	PackagePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByCompany &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CountsForTravelBuffer returns true if the booking participates in
// travel buffer checks
func (b *Booking) CountsForTravelBuffer() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByCompany
}

// Coordinate returns the shoot location coordinate.
// The result may be invalid, callers must check Coordinate.Valid().
func (b *Booking) Coordinate() Coordinate {
	return CoordinateFromPointers(b.Latitude, b.Longitude)
}

// EndTime returns the booking end time (start + duration)
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// DayBookingsFilter фильтр для получения бронирований на дату
type DayBookingsFilter struct {
	Date            time.Time      // Обязательный параметр
	PhotographerID  *int64         // Фильтр по фотографу (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show брони
}
