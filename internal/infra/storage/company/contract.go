package company

import "github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Репозиторий работает одинаково с *sql.DB и обёрткой с метриками
type DBExecutor = dbmetrics.DBExecutor
