package create_booking

import (
	"time"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	createBooking "github.com/pixelvan/PhotoBookingService/internal/usecase/create_booking"
	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PhotographerID int64  `json:"photographerId"`
	PackageID      int64  `json:"packageId"`
	BookingDate    string `json:"bookingDate"` // "2026-03-15"
	StartTime      string `json:"startTime"`   // "10:00"

	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	PackageName  string  `json:"packageName"`
	PackagePrice float64 `json:"packagePrice"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	UserID          int64    `json:"userId"`
	PhotographerID  int64    `json:"photographerId"`
	PackageID       int64    `json:"packageId"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       string   `json:"startTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	Address         string   `json:"address"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	PackageName     string   `json:"packageName"`
	PackagePrice    float64  `json:"packagePrice"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату в часовом поясе бизнеса
	bookingDate, err := time.ParseInLocation(domain.DateFormat, r.BookingDate, domain.BusinessZone)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:         userID,
		PhotographerID: r.PhotographerID,
		PackageID:      r.PackageID,
		Date:           bookingDate,
		StartTime:      startTime,
		Address:        r.Address,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		PackageName:    r.PackageName,
		PackagePrice:   r.PackagePrice,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		PhotographerID:  resp.PhotographerID,
		PackageID:       resp.PackageID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Address:         resp.Address,
		Latitude:        resp.Latitude,
		Longitude:       resp.Longitude,
		PackageName:     resp.PackageName,
		PackagePrice:    resp.PackagePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
