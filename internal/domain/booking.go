package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending            BookingStatus = "pending"
	StatusConfirmed          BookingStatus = "confirmed"
	StatusInProgress         BookingStatus = "in_progress"
	StatusCompleted          BookingStatus = "completed"
	StatusCancelledByUser    BookingStatus = "cancelled_by_user"
	StatusCancelledByCompany BookingStatus = "cancelled_by_company"
	StatusNoShow             BookingStatus = "no_show"
)

// Booking represents an existing reservation in the store
// This service never creates or mutates bookings - they are read-only input
// for availability computation
type Booking struct {
	ID              int64
	CompanyID       int64
	EmployeeID      int64
	ServiceID       int64
	BookingDate     time.Time
	BookingTime     types.TimeString
	DurationMinutes int
	Status          BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the booking occupies time on the schedule
// Only pending and confirmed bookings block slots; cancelled, completed
// and no-show bookings do not
func (b *Booking) IsBlocking() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BlockingStatuses статусы бронирований, занимающих время в расписании
// Используется для IN-фильтра при загрузке бронирований сотрудника
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
