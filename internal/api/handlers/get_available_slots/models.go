package get_available_slots

import (
	"strconv"
	"time"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	getAvailableSlots "github.com/pixelvan/PhotoBookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	EndTime         string `json:"endTime"`   // "11:30"
	DurationMinutes int    `json:"durationMinutes"`
	DisplayLabel    string `json:"displayLabel"` // "10:00–11:30"
}

// AvailableSlotsResponse HTTP модель ответа со списком слотов
type AvailableSlotsResponse struct {
	Date            string         `json:"date"` // "2026-03-15"
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest собирает модель use case из query параметров
func ToUseCaseRequest(userID int64, dateStr, photographerIDStr, durationStr, latStr, lngStr string) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, domain.BusinessZone)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		UserID: userID,
		Date:   date,
	}

	if photographerIDStr != "" {
		photographerID, err := strconv.ParseInt(photographerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.PhotographerID = &photographerID
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = &duration
	}

	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, err
		}
		req.Latitude = &lat
	}

	if lngStr != "" {
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return nil, err
		}
		req.Longitude = &lng
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
			DisplayLabel:    slot.DisplayLabel,
		})
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
