package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	companyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/company"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
)

// Service сервис для чтения настроек расписания компании
// Изменение настроек принадлежит внешнему CRUD-слою, здесь только чтение
type Service struct {
	companyRepo CompanyRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(companyRepo CompanyRepository, logger Logger) *Service {
	return &Service{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Get получает настройки расписания компании
// Для компании без собственной конфигурации возвращает дефолты с флагом is_default
func (s *Service) Get(ctx context.Context, companyID int64) (*models.SettingsResponse, error) {
	if companyID <= 0 {
		return nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetScheduleSettings: fetching settings for company=%d", companyID)

	stored, err := s.companyRepo.GetScheduleSettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrSettingsNotFound) {
			s.logger.Info("GetScheduleSettings: company=%d has no settings, using defaults", companyID)
			return models.FromDomainSettings(domain.DefaultScheduleSettings(companyID), true), nil
		}
		s.logger.Error("GetScheduleSettings: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(stored, false), nil
}
