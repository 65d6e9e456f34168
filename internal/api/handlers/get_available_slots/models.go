package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
// Контракт завязан на клиентский UI: ключи slots/time/employee_id/employee_name
// и message для пустого результата с причиной
type AvailableSlotsResponse struct {
	Slots   []Slot `json:"slots"`
	Message string `json:"message,omitempty"`
}

// Slot модель доступного слота
type Slot struct {
	Time         string `json:"time"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:         slot.Time.String(),
			EmployeeID:   slot.EmployeeID,
			EmployeeName: slot.EmployeeName,
		}
	}

	return &AvailableSlotsResponse{
		Slots:   slots,
		Message: resp.Message,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(companyID, serviceID int64, employeeID *int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CompanyID:  companyID,
		ServiceID:  serviceID,
		EmployeeID: employeeID,
		Date:       date,
	}, nil
}
