package domain

// Default schedule settings values
const (
	DefaultSlotDurationMinutes    = 30
	DefaultMinBookingAdvanceHours = 1
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinAdvanceHours        = 0
	MaxAdvanceHours        = 168 // 1 week
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay количество минут в сутках, верхняя граница minute-of-day
const MinutesPerDay = 24 * 60
