package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// AvailableSlot represents a candidate bookable start time for a service
// with a specific employee on a specific date
type AvailableSlot struct {
	Time         types.TimeString
	EmployeeID   int64
	EmployeeName string
}
