package get_schedule_config

import (
	"net/http"
	"strconv"

	"github.com/pixelvan/PhotoBookingService/internal/api/handlers"
	scheduleConfig "github.com/pixelvan/PhotoBookingService/internal/service/scheduleconfig"
)

const (
	msgInvalidPhotographerID = "некорректный ID фотографа"
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

// Handle GET /api/v1/schedule/config
// Query params: photographerId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq := &scheduleConfig.GetConfigRequest{}

	if photographerIDStr := r.URL.Query().Get("photographerId"); photographerIDStr != "" {
		photographerID, err := strconv.ParseInt(photographerIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /schedule/config - Invalid photographer ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhotographerID)
			return
		}
		serviceReq.PhotographerID = &photographerID
	}

	result, err := h.service.GetConfig(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /schedule/config - Failed to get config: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/config - Config retrieved successfully: config_id=%d, is_default=%v",
		result.ID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
