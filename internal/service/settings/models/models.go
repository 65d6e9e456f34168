package models

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// SettingsResponse ответ с настройками расписания компании
// IsDefault=true означает, что у компании нет собственной строки настроек
// и действуют значения по умолчанию
type SettingsResponse struct {
	CompanyID              int64 `json:"company_id"`
	SlotDuration           int   `json:"slot_duration"`
	MinBookingAdvanceHours int   `json:"min_booking_advance_hours"`
	IsDefault              bool  `json:"is_default"`
}

// FromDomainSettings конвертирует доменную модель в ответ сервиса
func FromDomainSettings(settings *domain.ScheduleSettings, isDefault bool) *SettingsResponse {
	return &SettingsResponse{
		CompanyID:              settings.CompanyID,
		SlotDuration:           settings.SlotDurationMinutes,
		MinBookingAdvanceHours: settings.MinBookingAdvanceHours,
		IsDefault:              isDefault,
	}
}
