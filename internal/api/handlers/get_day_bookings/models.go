package get_day_bookings

import (
	"strconv"
	"time"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	"github.com/pixelvan/PhotoBookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает модель сервиса из query параметров
func ToServiceRequest(dateStr, photographerIDStr, statusStr, includeInactiveStr string) (*models.GetDayBookingsRequest, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, domain.BusinessZone)
	if err != nil {
		return nil, err
	}

	req := &models.GetDayBookingsRequest{Date: date}

	if photographerIDStr != "" {
		photographerID, err := strconv.ParseInt(photographerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.PhotographerID = &photographerID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
