package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BusinessHours represents company working hours for one weekday
// One row per (company, weekday); weekday is 0=Sunday .. 6=Saturday
//
// SecondOpenTime/SecondCloseTime describe a split-hours second period
// (lunch-style). They are stored and scanned, but the slot generator
// intersects only the first period for now.
type BusinessHours struct {
	ID              int64
	CompanyID       int64
	DayOfWeek       int
	IsOpen          bool
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	SecondOpenTime  *types.TimeString
	SecondCloseTime *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleSettings represents per-company slot generation settings
// Optional: when a company has no row, defaults apply
type ScheduleSettings struct {
	ID                     int64
	CompanyID              int64
	SlotDurationMinutes    int
	MinBookingAdvanceHours int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultScheduleSettings возвращает настройки по умолчанию для компании без
// собственной конфигурации
func DefaultScheduleSettings(companyID int64) *ScheduleSettings {
	return &ScheduleSettings{
		CompanyID:              companyID,
		SlotDurationMinutes:    DefaultSlotDurationMinutes,
		MinBookingAdvanceHours: DefaultMinBookingAdvanceHours,
	}
}
