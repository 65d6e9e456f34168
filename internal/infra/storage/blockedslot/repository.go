package blockedslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий для чтения блокировок расписания
// Блокировка действует либо на всю компанию (employee_id IS NULL),
// либо на одного сотрудника; NULL start_time/end_time означает весь день
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForCompany получает блокировки уровня компании на дату
// (строки без привязки к сотруднику)
func (r *Repository) ListForCompany(ctx context.Context, companyID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	selectBuilder := baseSelect().
		Where(squirrel.Eq{
			"company_id":   companyID,
			"blocked_date": date,
			"employee_id":  nil,
		})

	return r.list(ctx, selectBuilder, "ListForCompany")
}

// ListForEmployee получает блокировки, привязанные к конкретному сотруднику, на дату
func (r *Repository) ListForEmployee(ctx context.Context, employeeID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	selectBuilder := baseSelect().
		Where(squirrel.Eq{
			"employee_id":  employeeID,
			"blocked_date": date,
		})

	return r.list(ctx, selectBuilder, "ListForEmployee")
}

func baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"company_id",
		"employee_id",
		"blocked_date",
		"start_time",
		"end_time",
		"reason",
		"created_at",
	).
		From("blocked_slots").
		OrderBy("start_time ASC NULLS FIRST")
}

func (r *Repository) list(ctx context.Context, selectBuilder squirrel.SelectBuilder, method string) ([]*domain.BlockedSlot, error) {
	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedSlot, 0)

	for rows.Next() {
		var (
			block              domain.BlockedSlot
			startTime, endTime sql.NullString
			createdAt          sql.NullTime
		)

		err := rows.Scan(
			&block.ID,
			&block.CompanyID,
			&block.EmployeeID,
			&block.BlockedDate,
			&startTime,
			&endTime,
			&block.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		if block.StartTime, err = toTimePtr(startTime); err != nil {
			return nil, fmt.Errorf("%w: %s - start_time: %v", ErrScanRow, method, err)
		}
		if block.EndTime, err = toTimePtr(endTime); err != nil {
			return nil, fmt.Errorf("%w: %s - end_time: %v", ErrScanRow, method, err)
		}

		block.CreatedAt = createdAt.Time

		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return blocks, nil
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
