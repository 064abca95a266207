package payroll

import (
	"github.com/wintararaj-cmd/Attendance/internal/pkg/validator"
)

type GenerateRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	// Empty means every active employee.
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerationError reports one employee's failure without aborting the batch.
type GenerationError struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

type GenerateResult struct {
	Generated int               `json:"generated"`
	Skipped   []string          `json:"skipped_locked,omitempty"`
	Errors    []GenerationError `json:"errors,omitempty"`
	Records   []RecordResponse  `json:"records,omitempty"`
}

type RecordResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	EmpCode      string    `json:"emp_code,omitempty"`
	PeriodMonth  int       `json:"period_month"`
	PeriodYear   int       `json:"period_year"`
	Payroll      Breakdown `json:"payroll"`
	Status       string    `json:"status"`
	LockedAt     *string   `json:"locked_at,omitempty"`
}

type RecordFilter struct {
	PeriodMonth *int
	PeriodYear  *int
	Status      *string
	EmployeeID  *string
	Page        int
	Limit       int
}

type ListRecordResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}
