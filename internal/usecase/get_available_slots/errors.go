package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда запрошенная услуга не существует
	// Жёсткая ошибка запроса, а не пустой результат с причиной
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при ошибках хранилища и прочих внутренних сбоях
	// Ошибка любой подзагрузки роняет весь запрос - частичные результаты не возвращаются
	ErrInternal = errors.New("usecase: internal error")
)
