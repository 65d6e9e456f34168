package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// CompanyRepository интерфейс репозитория рабочих часов и настроек компании
type CompanyRepository interface {
	// GetBusinessHours получает рабочие часы компании на день недели (0=воскресенье .. 6=суббота)
	GetBusinessHours(ctx context.Context, companyID int64, dayOfWeek int) (*domain.BusinessHours, error)
	// GetScheduleSettings получает настройки расписания компании
	GetScheduleSettings(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error)
}

// CatalogRepository интерфейс репозитория каталога: услуги и сотрудники
type CatalogRepository interface {
	// GetService получает услугу компании по ID
	GetService(ctx context.Context, companyID, serviceID int64) (*domain.Service, error)
	// ListEligibleEmployees получает активных сотрудников, оказывающих услугу
	ListEligibleEmployees(ctx context.Context, companyID, serviceID int64, employeeID *int64) ([]*domain.Employee, error)
}

// StaffRepository интерфейс репозитория рабочего времени сотрудников
type StaffRepository interface {
	GetScheduleForWeekday(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.EmployeeSchedule, error)
	GetAvailabilityForDate(ctx context.Context, employeeID int64, date time.Time) (*domain.EmployeeAvailability, error)
	ListAbsencesCovering(ctx context.Context, employeeID int64, date time.Time) ([]*domain.EmployeeAbsence, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок расписания
type BlockedSlotRepository interface {
	ListForCompany(ctx context.Context, companyID int64, date time.Time) ([]*domain.BlockedSlot, error)
	ListForEmployee(ctx context.Context, employeeID int64, date time.Time) ([]*domain.BlockedSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListBlockingForEmployee получает бронирования сотрудника на дату со статусами pending/confirmed
	ListBlockingForEmployee(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
