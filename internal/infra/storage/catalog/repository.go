package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения каталога компании: услуги и сотрудники
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает услугу компании по ID
func (r *Repository) GetService(ctx context.Context, companyID, serviceID int64) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"name",
		"duration_minutes",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "company_id": companyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.CompanyID,
		&service.Name,
		&service.DurationMinutes,
		&service.IsActive,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}

// ListEligibleEmployees получает активных сотрудников компании, оказывающих услугу
// Если employeeID задан, список сужается до одного сотрудника - запрошенный
// сотрудник, не оказывающий услугу, даст пустой результат, а не ошибку
func (r *Repository) ListEligibleEmployees(ctx context.Context, companyID, serviceID int64, employeeID *int64) ([]*domain.Employee, error) {
	selectBuilder := psqlbuilder.Select(
		"e.id",
		"e.company_id",
		"e.name",
		"e.employee_type",
		"e.is_active",
		"e.created_at",
		"e.updated_at",
	).
		From("employees e").
		Join("employee_services es ON es.employee_id = e.id").
		Where(squirrel.Eq{
			"e.company_id":  companyID,
			"e.is_active":   true,
			"es.service_id": serviceID,
		}).
		OrderBy("e.id ASC")

	// Сужение до одного запрошенного сотрудника
	if employeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"e.id": *employeeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligibleEmployees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligibleEmployees - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)

	for rows.Next() {
		var employee domain.Employee
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&employee.ID,
			&employee.CompanyID,
			&employee.Name,
			&employee.EmployeeType,
			&employee.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListEligibleEmployees - scan row: %v", ErrScanRow, err)
		}

		employee.CreatedAt = createdAt.Time
		employee.UpdatedAt = updatedAt.Time

		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEligibleEmployees - rows error: %v", ErrScanRow, err)
	}

	return employees, nil
}
