package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Сообщения причин пустого результата (short-circuit до генерации слотов)
// Причина сохраняется для отображения в UI и отличает политический отказ
// от просто пустого дня
const (
	MsgBusinessClosed  = "компания не работает в выбранную дату"
	MsgDateBlocked     = "выбранная дата закрыта для записи"
	MsgNoEligibleStaff = "нет сотрудников, оказывающих эту услугу"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CompanyID  int64      // ID компании
	ServiceID  int64      // ID услуги
	EmployeeID *int64     // Опционально: ограничить выдачу одним сотрудником
	Date       time.Time  // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
// Message непустой только для short-circuit результатов; пустой список
// после полной генерации приходит без сообщения
type Response struct {
	Slots   []domain.AvailableSlot
	Message string
}

func emptyResponse(message string) *Response {
	return &Response{
		Slots:   []domain.AvailableSlot{},
		Message: message,
	}
}
