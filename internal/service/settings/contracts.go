package settings

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// CompanyRepository интерфейс репозитория настроек компании
type CompanyRepository interface {
	GetScheduleSettings(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
