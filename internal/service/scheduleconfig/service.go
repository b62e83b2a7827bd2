package scheduleconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	configRepo "github.com/pixelvan/PhotoBookingService/internal/infra/storage/scheduleconfig"
)

// Service сервис конфигурации расписания
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: repo,
		logger:     logger,
	}
}

// GetConfig возвращает действующую конфигурацию расписания.
// Если в БД нет ни одной строки, возвращаются встроенные дефолты.
func (s *Service) GetConfig(ctx context.Context, req *GetConfigRequest) (*ConfigResponse, error) {
	config, err := s.configRepo.GetConfigWithHierarchy(ctx, req.PhotographerID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return fromDomainConfig(domain.DefaultScheduleConfig(), true), nil
		}
		s.logger.Error("GetConfig: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return fromDomainConfig(config, false), nil
}

// UpdateConfig создает или обновляет конфигурацию расписания
func (s *Service) UpdateConfig(ctx context.Context, req *UpdateConfigRequest) (*ConfigResponse, error) {
	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("UpdateConfig: validation failed: %v", err)
		return nil, err
	}

	config := &domain.ScheduleConfig{
		PhotographerID:          req.PhotographerID,
		BusinessHoursStart:      req.BusinessHoursStart,
		BusinessHoursEnd:        req.BusinessHoursEnd,
		SlotDurationMinutes:     req.SlotDurationMinutes,
		AdvanceBookingDays:      req.AdvanceBookingDays,
		MinBookingNoticeMinutes: req.MinBookingNoticeMinutes,
	}

	updated, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("UpdateConfig: failed to upsert config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: config %d updated", updated.ID)

	return fromDomainConfig(updated, false), nil
}

// validateUpdateRequest валидирует запрос на обновление конфигурации
func validateUpdateRequest(req *UpdateConfigRequest) error {
	if err := req.BusinessHoursStart.Validate(); err != nil {
		return fmt.Errorf("%w: invalid businessHoursStart: %v", ErrInvalidInput, err)
	}

	if err := req.BusinessHoursEnd.Validate(); err != nil {
		return fmt.Errorf("%w: invalid businessHoursEnd: %v", ErrInvalidInput, err)
	}

	if !req.BusinessHoursStart.IsBefore(req.BusinessHoursEnd) {
		return fmt.Errorf("%w: businessHoursStart must be before businessHoursEnd", ErrInvalidInput)
	}

	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if req.AdvanceBookingDays < domain.MinAdvanceBookingDays || req.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if req.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || req.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}

	return nil
}
