package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения существующих бронирований
// Сервис доступности только читает бронирования - создание и отмена
// принадлежат внешнему CRUD-слою
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBlockingForEmployee получает бронирования сотрудника на дату,
// занимающие время в расписании (status IN pending, confirmed)
// Отменённые и завершённые бронирования время не занимают
func (r *Repository) ListBlockingForEmployee(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error) {
	blockingStatuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blockingStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"employee_id",
		"service_id",
		"booking_date",
		"booking_time",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{
			"employee_id":  employeeID,
			"booking_date": date,
			"status":       blockingStatuses,
		}).
		OrderBy("booking_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingForEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingForEmployee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.CompanyID,
			&booking.EmployeeID,
			&booking.ServiceID,
			&booking.BookingDate,
			&booking.BookingTime,
			&booking.DurationMinutes,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
