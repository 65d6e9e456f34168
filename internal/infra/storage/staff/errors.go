package staff

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у сотрудника нет расписания на день недели
	ErrScheduleNotFound = errors.New("staff.repository: employee schedule not found")

	// ErrAvailabilityNotFound возвращается, когда у сотрудника нет доступности на дату
	ErrAvailabilityNotFound = errors.New("staff.repository: employee availability not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("staff.repository: failed to scan row")
)
