package update_schedule_config

import (
	"errors"
	"net/http"

	"github.com/pixelvan/PhotoBookingService/internal/api/handlers"
	scheduleConfig "github.com/pixelvan/PhotoBookingService/internal/service/scheduleconfig"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidData        = "некорректные данные конфигурации"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/config
// Только для сотрудников студии.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req UpdateScheduleConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель сервиса (с парсингом времени)
	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /schedule/config - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Обновляем конфигурацию
	result, err := h.service.UpdateConfig(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleConfig.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/config - Invalid data: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /schedule/config - Failed to update config: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/config - Config updated successfully: config_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
