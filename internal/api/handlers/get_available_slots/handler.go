package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/pixelvan/PhotoBookingService/internal/api/handlers"
	"github.com/pixelvan/PhotoBookingService/internal/api/middleware"
	getAvailableSlots "github.com/pixelvan/PhotoBookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "дата обязательна"
	msgInvalidParams       = "некорректные параметры запроса"
	msgInvalidDate         = "некорректная дата запроса"
	msgDateTooFar          = "дата слишком далеко в будущем"
	msgCalendarUnavailable = "не удалось получить занятость календаря"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), photographerId, durationMinutes,
// latitude, longitude (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// userID опционален: слоты доступны и неавторизованным клиентам
	userID, _ := middleware.GetUserID(r.Context())

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом параметров)
	useCaseReq, err := ToUseCaseRequest(
		userID,
		dateStr,
		query.Get("photographerId"),
		query.Get("durationMinutes"),
		query.Get("latitude"),
		query.Get("longitude"),
	)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Invalid date: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /available-slots - Date too far in future: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrCalendarUnavailable):
			h.logger.Error("GET /available-slots - Calendar unavailable: date=%s, error=%v", dateStr, err)
			handlers.RespondBadGateway(w, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
