package company

import "errors"

var (
	// ErrBusinessHoursNotFound возвращается, когда для дня недели нет строки рабочих часов
	ErrBusinessHoursNotFound = errors.New("company.repository: business hours not found")

	// ErrSettingsNotFound возвращается, когда у компании нет настроек расписания
	ErrSettingsNotFound = errors.New("company.repository: schedule settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("company.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("company.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("company.repository: failed to scan row")
)
