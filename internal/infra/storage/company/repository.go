package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий для чтения рабочих часов и настроек расписания компании
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компании
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessHours получает рабочие часы компании на день недели (0=воскресенье .. 6=суббота)
// Отсутствие строки означает, что компания не работает в этот день
func (r *Repository) GetBusinessHours(ctx context.Context, companyID int64, dayOfWeek int) (*domain.BusinessHours, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"day_of_week",
		"is_open",
		"open_time",
		"close_time",
		"second_open_time",
		"second_close_time",
		"created_at",
		"updated_at",
	).
		From("business_hours").
		Where(squirrel.Eq{"company_id": companyID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	var (
		hours                 domain.BusinessHours
		secondOpen, secondClose sql.NullString
		createdAt, updatedAt  sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&hours.CompanyID,
		&hours.DayOfWeek,
		&hours.IsOpen,
		&hours.OpenTime,
		&hours.CloseTime,
		&secondOpen,
		&secondClose,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - scan business hours: %v", ErrScanRow, err)
	}

	if hours.SecondOpenTime, err = toTimePtr(secondOpen); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - second_open_time: %v", ErrScanRow, err)
	}
	if hours.SecondCloseTime, err = toTimePtr(secondClose); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - second_close_time: %v", ErrScanRow, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}

// GetScheduleSettings получает настройки расписания компании
// Возвращает ErrSettingsNotFound, если у компании нет собственной конфигурации -
// вызывающая сторона подставляет дефолтные значения
func (r *Repository) GetScheduleSettings(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"slot_duration",
		"min_booking_advance_hours",
		"created_at",
		"updated_at",
	).
		From("company_schedule_settings").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleSettings - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.ScheduleSettings
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.CompanyID,
		&settings.SlotDurationMinutes,
		&settings.MinBookingAdvanceHours,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleSettings - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// toTimePtr конвертирует nullable TIME колонку в *types.TimeString
func toTimePtr(ns sql.NullString) (*types.TimeString, error) {
	if !ns.Valid {
		return nil, nil
	}
	var t types.TimeString
	if err := t.Scan(ns.String); err != nil {
		return nil, err
	}
	return &t, nil
}
