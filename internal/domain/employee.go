package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// EmployeeType determines how an employee's working time is defined
type EmployeeType string

const (
	// EmployeeTypeFixed - weekly recurring pattern, one EmployeeSchedule row per weekday
	EmployeeTypeFixed EmployeeType = "fixed"
	// EmployeeTypeAutonomous - availability declared per calendar date, no recurrence
	EmployeeTypeAutonomous EmployeeType = "autonomous"
)

// Employee represents a staff member of a company
type Employee struct {
	ID           int64
	CompanyID    int64
	Name         string
	EmployeeType EmployeeType
	IsActive     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeSchedule represents the weekly working pattern of a fixed employee
// One row per (employee, weekday); absence of a row means the employee
// does not work on that weekday
type EmployeeSchedule struct {
	ID         int64
	EmployeeID int64
	DayOfWeek  int
	IsWorking  bool
	StartTime  types.TimeString
	EndTime    types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
}

// EmployeeAvailability represents the declared working window of an
// autonomous employee for one specific date
type EmployeeAvailability struct {
	ID            int64
	EmployeeID    int64
	AvailableDate time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	BreakStart    *types.TimeString
	BreakEnd      *types.TimeString
}

// EmployeeAbsence represents a date range (inclusive on both ends) during
// which the employee is fully unavailable
type EmployeeAbsence struct {
	ID         int64
	EmployeeID int64
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
}

// Covers returns true if the absence covers the given date
func (a *EmployeeAbsence) Covers(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(truncateToDate(a.StartDate)) && !d.After(truncateToDate(a.EndDate))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
