package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Structure is the salary configuration for one employee. Exactly one row
// exists per employee. How the amount fields are read depends on the
// employee's pay basis: per-day rates for workers, fixed monthly amounts for
// staff. The hourly and contract rate fields only apply to those bases.
type Structure struct {
	ID         string
	EmployeeID string

	BasicSalary decimal.Decimal

	// Allowances
	HRA                 decimal.Decimal
	ConveyanceAllowance decimal.Decimal
	MedicalAllowance    decimal.Decimal
	SpecialAllowance    decimal.Decimal
	WashingAllowance    decimal.Decimal
	EducationAllowance  decimal.Decimal
	OtherAllowance      decimal.Decimal

	// Benefits
	Bonus     decimal.Decimal
	Incentive decimal.Decimal

	// Fixed deduction amounts. Zero professional tax means the statutory
	// default applies; zero welfare means the flat default applies.
	ProfessionalTax  decimal.Decimal
	TDS              decimal.Decimal
	WelfareDeduction decimal.Decimal

	// Deduction toggles
	IsPFApplicable  bool
	IsESIApplicable bool

	// Part-time / contract rates
	IsHourlyBased      bool
	HourlyRate         decimal.Decimal
	ContractRatePerDay decimal.Decimal

	// Overtime multipliers per bucket
	OTRateMultiplier    decimal.Decimal
	OTWeekendMultiplier decimal.Decimal
	OTHolidayMultiplier decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllowanceTotal sums every configured allowance component. For workers
// this is a per-day amount, for staff a monthly amount.
func (s Structure) AllowanceTotal() decimal.Decimal {
	return s.HRA.
		Add(s.ConveyanceAllowance).
		Add(s.MedicalAllowance).
		Add(s.SpecialAllowance).
		Add(s.WashingAllowance).
		Add(s.EducationAllowance).
		Add(s.OtherAllowance)
}

// DefaultStructure returns a structure with the documented defaults: every
// amount zero, PF on, ESI off, 1.5x/2.0x/2.5x overtime multipliers.
func DefaultStructure(employeeID string) Structure {
	return Structure{
		EmployeeID:          employeeID,
		IsPFApplicable:      true,
		OTRateMultiplier:    decimal.NewFromFloat(1.5),
		OTWeekendMultiplier: decimal.NewFromFloat(2.0),
		OTHolidayMultiplier: decimal.NewFromFloat(2.5),
	}
}
