package domain

import "time"

// Service represents a bookable service offered by a company
type Service struct {
	ID              int64
	CompanyID       int64
	Name            string
	DurationMinutes int
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
