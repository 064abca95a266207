package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/wintararaj-cmd/Attendance/internal/pkg/validator"
)

// MarkRequest is posted by the attendance terminal after the external face
// matcher has identified the employee. The matcher itself is not part of
// this service; only its verdict arrives here.
type MarkRequest struct {
	EmpCode    string   `json:"emp_code"`
	Confidence *float64 `json:"confidence,omitempty"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpCode) {
		errs = append(errs, validator.ValidationError{Field: "emp_code", Message: "is required"})
	}
	if r.Confidence != nil && (*r.Confidence < 0 || *r.Confidence > 100) {
		errs = append(errs, validator.ValidationError{Field: "confidence", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetStatusRequest lets an admin override the status of a day, e.g. to
// record a paid leave, holiday or half day.
type SetStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

var validStatuses = []string{
	string(StatusPresent),
	string(StatusHalfDay),
	string(StatusLeavePaid),
	string(StatusHoliday),
	string(StatusWeeklyOff),
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a recognized attendance status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LogResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	EmpCode          string          `json:"emp_code,omitempty"`
	Date             string          `json:"date"`
	CheckIn          *string         `json:"check_in,omitempty"`
	CheckOut         *string         `json:"check_out,omitempty"`
	Status           string          `json:"status"`
	ConfidenceScore  *float64        `json:"confidence_score,omitempty"`
	OTHours          decimal.Decimal `json:"ot_hours"`
	OTWeekendHours   decimal.Decimal `json:"ot_weekend_hours"`
	OTHolidayHours   decimal.Decimal `json:"ot_holiday_hours"`
	TotalHoursWorked decimal.Decimal `json:"total_hours_worked"`
}

type LogFilter struct {
	EmployeeID *string
	DateFrom   *string
	DateTo     *string
	Page       int
	Limit      int
}

type ListLogResponse struct {
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Logs       []LogResponse `json:"logs"`
}

// SummaryResponse is the monthly aggregate exposed for one employee,
// mirroring the figures payroll generation consumes.
type SummaryResponse struct {
	EmployeeID       string          `json:"employee_id"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalDaysInMonth int             `json:"total_days_in_month"`
	DaysCounted      int             `json:"days_counted"`
	PresentDays      decimal.Decimal `json:"present_days"`
	PaidDays         decimal.Decimal `json:"paid_days"`
	OTHours          decimal.Decimal `json:"ot_hours"`
	OTWeekendHours   decimal.Decimal `json:"ot_weekend_hours"`
	OTHolidayHours   decimal.Decimal `json:"ot_holiday_hours"`
	TotalHoursWorked decimal.Decimal `json:"total_hours_worked"`
}
