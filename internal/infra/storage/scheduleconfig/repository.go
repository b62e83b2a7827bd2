package scheduleconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	"github.com/pixelvan/PhotoBookingService/pkg/dbmetrics"
	"github.com/pixelvan/PhotoBookingService/pkg/psqlbuilder"
)

// configColumns полный набор колонок таблицы schedule_configs
var configColumns = []string{
	"id",
	"photographer_id",
	"business_hours_start",
	"business_hours_end",
	"slot_duration_minutes",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии:
// сначала ищется конфигурация конкретного фотографа, затем общая.
// Если нет ни одной - возвращает ErrConfigNotFound, вызывающий код
// использует дефолты.
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, photographerID *int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if photographerID != nil {
		config, err := r.getByPhotographer(ctx, executor, photographerID)
		if err != nil && err != ErrConfigNotFound {
			return nil, err
		}
		if config != nil {
			return config, nil
		}
	}

	return r.getByPhotographer(ctx, executor, nil)
}

// getByPhotographer получает строку конфигурации по ключу иерархии
func (r *Repository) getByPhotographer(ctx context.Context, executor dbmetrics.DBExecutor, photographerID *int64) (*domain.ScheduleConfig, error) {
	selectBuilder := psqlbuilder.Select(configColumns...).
		From("schedule_configs")

	if photographerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"photographer_id": *photographerID})
	} else {
		selectBuilder = selectBuilder.Where("photographer_id IS NULL")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByPhotographer - build select query: %v", ErrBuildQuery, err)
	}

	config, err := r.scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByPhotographer - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// Upsert создает или обновляет конфигурацию по ключу иерархии
func (r *Repository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_configs").
		Columns(
			"photographer_id",
			"business_hours_start",
			"business_hours_end",
			"slot_duration_minutes",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			config.PhotographerID,
			config.BusinessHoursStart,
			config.BusinessHoursEnd,
			config.SlotDurationMinutes,
			config.AdvanceBookingDays,
			config.MinBookingNoticeMinutes,
		).
		Suffix(`ON CONFLICT (COALESCE(photographer_id, 0)) DO UPDATE SET
			business_hours_start = EXCLUDED.business_hours_start,
			business_hours_end = EXCLUDED.business_hours_end,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// scanConfig сканирует одну строку в domain.ScheduleConfig
func (r *Repository) scanConfig(row *sql.Row) (*domain.ScheduleConfig, error) {
	var config domain.ScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.PhotographerID,
		&config.BusinessHoursStart,
		&config.BusinessHoursEnd,
		&config.SlotDurationMinutes,
		&config.AdvanceBookingDays,
		&config.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
