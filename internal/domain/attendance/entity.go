package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent   Status = "present"
	StatusHalfDay   Status = "half_day"
	StatusLeavePaid Status = "leave_paid"
	StatusHoliday   Status = "holiday"
	StatusWeeklyOff Status = "weekly_off"
)

// Log is one attendance record: at most one per employee per calendar date.
// A record's existence implies CheckIn is set; CheckOut, when present, is
// never before CheckIn. The overtime buckets and TotalHoursWorked are
// written once at check-out and only change on an explicit recompute pass.
type Log struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status

	// Confidence reported by the external face matcher, when attendance was
	// marked biometrically.
	ConfidenceScore *float64

	OTHours          decimal.Decimal
	OTWeekendHours   decimal.Decimal
	OTHolidayHours   decimal.Decimal
	TotalHoursWorked decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmpCode      *string
}

// IsPaidUnworked reports whether the status pays the day without counting it
// as worked.
func (s Status) IsPaidUnworked() bool {
	switch s {
	case StatusLeavePaid, StatusHoliday, StatusWeeklyOff:
		return true
	}
	return false
}
