package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий для чтения рабочего времени сотрудников:
// недельные расписания, доступность на дату, отсутствия
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочего времени
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetScheduleForWeekday получает строку недельного расписания фиксированного
// сотрудника на день недели (0=воскресенье .. 6=суббота)
// Отсутствие строки означает, что сотрудник не работает в этот день
func (r *Repository) GetScheduleForWeekday(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.EmployeeSchedule, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"employee_id",
		"day_of_week",
		"is_working",
		"start_time",
		"end_time",
		"break_start",
		"break_end",
	).
		From("employee_schedules").
		Where(squirrel.Eq{"employee_id": employeeID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.EmployeeSchedule
	var breakStart, breakEnd sql.NullString

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.EmployeeID,
		&schedule.DayOfWeek,
		&schedule.IsWorking,
		&schedule.StartTime,
		&schedule.EndTime,
		&breakStart,
		&breakEnd,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForWeekday - scan schedule: %v", ErrScanRow, err)
	}

	if schedule.BreakStart, err = toTimePtr(breakStart); err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForWeekday - break_start: %v", ErrScanRow, err)
	}
	if schedule.BreakEnd, err = toTimePtr(breakEnd); err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForWeekday - break_end: %v", ErrScanRow, err)
	}

	return &schedule, nil
}

// GetAvailabilityForDate получает доступность автономного сотрудника на конкретную дату
// Отсутствие строки означает, что сотрудник недоступен в эту дату
func (r *Repository) GetAvailabilityForDate(ctx context.Context, employeeID int64, date time.Time) (*domain.EmployeeAvailability, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"employee_id",
		"available_date",
		"start_time",
		"end_time",
		"break_start",
		"break_end",
	).
		From("employee_availability").
		Where(squirrel.Eq{"employee_id": employeeID, "available_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailabilityForDate - build select query: %v", ErrBuildQuery, err)
	}

	var availability domain.EmployeeAvailability
	var breakStart, breakEnd sql.NullString

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&availability.ID,
		&availability.EmployeeID,
		&availability.AvailableDate,
		&availability.StartTime,
		&availability.EndTime,
		&breakStart,
		&breakEnd,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailabilityForDate - scan availability: %v", ErrScanRow, err)
	}

	if availability.BreakStart, err = toTimePtr(breakStart); err != nil {
		return nil, fmt.Errorf("%w: GetAvailabilityForDate - break_start: %v", ErrScanRow, err)
	}
	if availability.BreakEnd, err = toTimePtr(breakEnd); err != nil {
		return nil, fmt.Errorf("%w: GetAvailabilityForDate - break_end: %v", ErrScanRow, err)
	}

	return &availability, nil
}

// ListAbsencesCovering получает отсутствия сотрудника, покрывающие дату
// Диапазон отсутствия включает обе границы
func (r *Repository) ListAbsencesCovering(ctx context.Context, employeeID int64, date time.Time) ([]*domain.EmployeeAbsence, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"employee_id",
		"start_date",
		"end_date",
		"reason",
	).
		From("employee_absences").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAbsencesCovering - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAbsencesCovering - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	absences := make([]*domain.EmployeeAbsence, 0)

	for rows.Next() {
		var absence domain.EmployeeAbsence

		err := rows.Scan(
			&absence.ID,
			&absence.EmployeeID,
			&absence.StartDate,
			&absence.EndDate,
			&absence.Reason,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAbsencesCovering - scan row: %v", ErrScanRow, err)
		}

		absences = append(absences, &absence)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAbsencesCovering - rows error: %v", ErrScanRow, err)
	}

	return absences, nil
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
