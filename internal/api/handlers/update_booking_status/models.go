package update_booking_status

import (
	"github.com/pixelvan/PhotoBookingService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(bookingID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		BookingID: bookingID,
		Status:    r.Status,
	}
}
