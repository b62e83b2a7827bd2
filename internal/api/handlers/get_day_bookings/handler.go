package get_day_bookings

import (
	"errors"
	"net/http"

	"github.com/pixelvan/PhotoBookingService/internal/api/handlers"
	"github.com/pixelvan/PhotoBookingService/internal/service/bookings"
)

const (
	msgMissingDate   = "дата обязательна"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/bookings
// Query params: date (required, YYYY-MM-DD), photographerId, status,
// includeInactive (опционально). Только для сотрудников студии.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/bookings - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(
		dateStr,
		query.Get("photographerId"),
		query.Get("status"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /schedule/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetDayBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /schedule/bookings - Invalid parameters: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /schedule/bookings - Failed to get bookings: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/bookings - Bookings retrieved successfully: date=%s, count=%d",
		dateStr, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
