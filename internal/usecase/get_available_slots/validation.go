package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
// Выполняется до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID != nil && *req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
