package cancel_booking

import (
	"github.com/pixelvan/PhotoBookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(bookingID, userID int64, isStaff bool) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		BookingID: bookingID,
		UserID:    userID,
		IsStaff:   isStaff,
		Reason:    r.CancellationReason,
	}
}
