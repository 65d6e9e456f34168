package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BlockedSlot represents an exclusion window for one date
// Scoped either company-wide (EmployeeID == nil) or to a single employee.
// NULL start/end time means the entire day is blocked for that scope
type BlockedSlot struct {
	ID          int64
	CompanyID   int64
	EmployeeID  *int64
	BlockedDate time.Time
	StartTime   *types.TimeString
	EndTime     *types.TimeString
	Reason      *string

	CreatedAt time.Time
}

// IsFullDay returns true if the block covers the whole day
func (b *BlockedSlot) IsFullDay() bool {
	return b.StartTime == nil || b.EndTime == nil
}

// IsCompanyWide returns true if the block applies to every employee of the company
func (b *BlockedSlot) IsCompanyWide() bool {
	return b.EmployeeID == nil
}
