package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary is the attendance aggregate one payroll calculation
// consumes. It is derived fresh per generation request and never persisted
// on its own.
type MonthlySummary struct {
	TotalDaysInMonth int
	// DaysCounted is capped at "today" for the current month: future days
	// are excluded from every sum.
	DaysCounted int

	// PresentDays weights half days at 0.5. PaidDays additionally counts
	// paid-unworked days (leave, holiday, weekly off).
	PresentDays decimal.Decimal
	PaidDays    decimal.Decimal

	OTHours          decimal.Decimal
	OTWeekendHours   decimal.Decimal
	OTHolidayHours   decimal.Decimal
	TotalHoursWorked decimal.Decimal

	// LoanDeduction is a pass-through from the loan ledger, not computed
	// here.
	LoanDeduction decimal.Decimal
}

// UnpaidDays is the LOP day count for fixed-monthly staff.
func (s MonthlySummary) UnpaidDays() decimal.Decimal {
	return decimal.NewFromInt(int64(s.TotalDaysInMonth)).Sub(s.PaidDays)
}

// Earnings itemizes the pay side of a breakdown. Field names are stable:
// the payslip renderer and the register export key off them.
type Earnings struct {
	BasicEarned decimal.Decimal `json:"basic_earned"`
	HRA         decimal.Decimal `json:"hra"`
	Conveyance  decimal.Decimal `json:"conveyance"`
	Medical     decimal.Decimal `json:"medical"`
	Special     decimal.Decimal `json:"special"`
	Washing     decimal.Decimal `json:"washing"`
	Education   decimal.Decimal `json:"education"`
	Other       decimal.Decimal `json:"other"`
	OTAmount    decimal.Decimal `json:"ot_amount"`
	Bonus       decimal.Decimal `json:"bonus"`
	Incentive   decimal.Decimal `json:"incentive"`
	Gross       decimal.Decimal `json:"gross_salary"`
}

type Deductions struct {
	PF      decimal.Decimal `json:"pf"`
	ESI     decimal.Decimal `json:"esi"`
	ProfTax decimal.Decimal `json:"prof_tax"`
	Welfare decimal.Decimal `json:"welfare"`
	TDS     decimal.Decimal `json:"tds"`
	Loan    decimal.Decimal `json:"loan"`
	Total   decimal.Decimal `json:"total"`
}

type EmployerContributions struct {
	PF    decimal.Decimal `json:"pf"`
	ESI   decimal.Decimal `json:"esi"`
	Total decimal.Decimal `json:"total"`
}

type Metadata struct {
	WorkingDays      decimal.Decimal `json:"working_days"`
	OTHours          decimal.Decimal `json:"ot_hours"`
	TotalDaysInMonth int             `json:"total_days_in_month"`
	PaidDays         decimal.Decimal `json:"paid_days"`
}

// Breakdown is the full itemized payroll result for one employee and month.
// Invariant: Earnings.Gross minus Deductions.Total equals NetSalary at the
// stored 2-decimal precision.
type Breakdown struct {
	Earnings              Earnings              `json:"earnings"`
	Deductions            Deductions            `json:"deductions"`
	EmployerContributions EmployerContributions `json:"employer_contributions"`
	NetSalary             decimal.Decimal       `json:"net_salary"`
	CTC                   decimal.Decimal       `json:"ctc"`
	Metadata              Metadata              `json:"metadata"`
}

type RecordStatus string

const (
	RecordStatusDraft  RecordStatus = "draft"
	RecordStatusLocked RecordStatus = "locked"
)

// Record is a persisted payroll result for (employee, month, year). Draft
// records are overwritten by regeneration; locked records are immutable and
// regeneration must skip them.
type Record struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	Breakdown   Breakdown
	Status      RecordStatus
	LockedAt    *time.Time
	LockedBy    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmpCode      *string
}
