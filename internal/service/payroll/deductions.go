package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
	"github.com/wintararaj-cmd/Attendance/internal/domain/payroll"
)

// Statutory figures. PF caps at a 15000 basic; ESI is income-tested against
// a 21000 gross ceiling and its shares always round up to the next rupee.
var (
	pfWageCeiling   = decimal.NewFromInt(15000)
	pfRate          = decimal.New(12, -2)
	esiGrossCeiling = decimal.NewFromInt(21000)
	esiEmployeeRate = decimal.New(75, -4)
	esiEmployerRate = decimal.New(325, -4)
	ptThreshold     = decimal.NewFromInt(10000)
	ptDefault       = decimal.NewFromInt(200)
	welfareDefault  = decimal.NewFromInt(3)
)

// DeductionInput is everything the deduction rules read. Loan is a
// pass-through from the loan ledger; TDS is a pass-through configured amount.
type DeductionInput struct {
	Gross       decimal.Decimal
	EarnedBasic decimal.Decimal
	Basis       employee.PayBasis

	PFApplicable  bool
	ESIApplicable bool

	// ProfessionalTax zero means the statutory default applies. Welfare zero
	// means the flat default applies for worker and staff employees.
	ProfessionalTax decimal.Decimal
	Welfare         decimal.Decimal
	TDS             decimal.Decimal
	Loan            decimal.Decimal
}

// CalculateDeductions applies the statutory deduction rules to one gross
// figure. Every component is rounded before totalling so the total always
// equals the sum of the stored components.
func CalculateDeductions(in DeductionInput) (payroll.Deductions, payroll.EmployerContributions, error) {
	for field, v := range map[string]decimal.Decimal{
		"gross":            in.Gross,
		"earned_basic":     in.EarnedBasic,
		"professional_tax": in.ProfessionalTax,
		"welfare":          in.Welfare,
		"tds":              in.TDS,
		"loan":             in.Loan,
	} {
		if v.IsNegative() {
			return payroll.Deductions{}, payroll.EmployerContributions{}, fmt.Errorf("%w: %s is negative", payroll.ErrInvalidInput, field)
		}
	}

	var d payroll.Deductions
	var employer payroll.EmployerContributions

	if in.PFApplicable && in.EarnedBasic.IsPositive() {
		pfBase := decimal.Min(in.EarnedBasic, pfWageCeiling)
		d.PF = pfBase.Mul(pfRate).Round(2)
		employer.PF = d.PF
	}

	if (in.ESIApplicable || in.Gross.LessThanOrEqual(esiGrossCeiling)) && in.Gross.IsPositive() {
		d.ESI = in.Gross.Mul(esiEmployeeRate).RoundCeil(0)
		employer.ESI = in.Gross.Mul(esiEmployerRate).RoundCeil(0)
	}

	switch {
	case in.ProfessionalTax.IsPositive():
		d.ProfTax = in.ProfessionalTax.Round(2)
	case in.Gross.GreaterThan(ptThreshold):
		d.ProfTax = ptDefault
	}

	switch {
	case in.Welfare.IsPositive():
		d.Welfare = in.Welfare.Round(2)
	case in.Basis == employee.PayBasisWorker || in.Basis == employee.PayBasisStaff:
		d.Welfare = welfareDefault
	}

	d.TDS = in.TDS.Round(2)
	d.Loan = in.Loan.Round(2)

	d.Total = d.PF.Add(d.ESI).Add(d.ProfTax).Add(d.Welfare).Add(d.TDS).Add(d.Loan)
	employer.Total = employer.PF.Add(employer.ESI)

	return d, employer, nil
}
