package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
	"github.com/wintararaj-cmd/Attendance/internal/domain/payroll"
	"github.com/wintararaj-cmd/Attendance/internal/domain/salary"
)

var (
	hoursPerShift = decimal.NewFromInt(8)
	// monthlyOTHours is the staff overtime divisor: 30 days of 8 hours.
	monthlyOTHours    = decimal.NewFromInt(240)
	fallbackMonthDays = decimal.NewFromInt(30)
)

// CalculateBreakdown turns a salary structure and a month's attendance
// aggregate into the full itemized payroll result. It is a pure function:
// no I/O, no clock, and the same inputs always produce the same breakdown.
//
// Exactly one pay model applies, chosen by basis:
//
//	worker   - every component is a per-day rate, paid for present days only
//	staff    - fixed monthly components with pro-rata loss of pay
//	hourly   - hourly rate over worked hours, overtime hours paid separately
//	contract - flat per-day rate, paid for present days only
//
// All arithmetic stays in decimals; rounding to 2 places happens once at the
// end, and the net is derived from the rounded gross and rounded deduction
// total so the stored figures reconcile exactly.
func CalculateBreakdown(structure salary.Structure, summary payroll.MonthlySummary, basis employee.PayBasis) (payroll.Breakdown, error) {
	if err := validateStructure(structure); err != nil {
		return payroll.Breakdown{}, err
	}

	var (
		earnings    payroll.Earnings
		earnedBasic decimal.Decimal
		otBase      decimal.Decimal
	)

	switch basis {
	case employee.PayBasisWorker:
		present := summary.PresentDays
		earnings = payroll.Earnings{
			BasicEarned: structure.BasicSalary.Mul(present),
			HRA:         structure.HRA.Mul(present),
			Conveyance:  structure.ConveyanceAllowance.Mul(present),
			Medical:     structure.MedicalAllowance.Mul(present),
			Special:     structure.SpecialAllowance.Mul(present),
			Washing:     structure.WashingAllowance.Mul(present),
			Education:   structure.EducationAllowance.Mul(present),
			Other:       structure.OtherAllowance.Mul(present),
		}
		earnedBasic = earnings.BasicEarned
		otBase = structure.BasicSalary.Add(structure.AllowanceTotal()).Div(hoursPerShift)

	case employee.PayBasisStaff:
		divisorDays := decimal.NewFromInt(int64(summary.TotalDaysInMonth))
		if divisorDays.IsZero() {
			divisorDays = fallbackMonthDays
		}
		// Paying each component at paid/total is the same as deducting
		// per-day loss of pay from the monthly total, but keeps the
		// itemization exact per component.
		ratio := summary.PaidDays.Div(divisorDays)

		earnings = payroll.Earnings{
			BasicEarned: structure.BasicSalary.Mul(ratio),
			HRA:         structure.HRA.Mul(ratio),
			Conveyance:  structure.ConveyanceAllowance.Mul(ratio),
			Medical:     structure.MedicalAllowance.Mul(ratio),
			Special:     structure.SpecialAllowance.Mul(ratio),
			Washing:     structure.WashingAllowance.Mul(ratio),
			Education:   structure.EducationAllowance.Mul(ratio),
			Other:       structure.OtherAllowance.Mul(ratio),
		}
		earnedBasic = earnings.BasicEarned
		otBase = structure.BasicSalary.Div(monthlyOTHours)

	case employee.PayBasisHourly:
		otHours := summary.OTHours.Add(summary.OTWeekendHours).Add(summary.OTHolidayHours)
		baseHours := summary.TotalHoursWorked.Sub(otHours)
		if baseHours.IsNegative() {
			baseHours = decimal.Zero
		}
		earnings.BasicEarned = structure.HourlyRate.Mul(baseHours)
		earnedBasic = earnings.BasicEarned
		otBase = structure.HourlyRate

	case employee.PayBasisContract:
		earnings.BasicEarned = structure.ContractRatePerDay.Mul(summary.PresentDays)
		earnedBasic = earnings.BasicEarned
		otBase = structure.ContractRatePerDay.Div(hoursPerShift)

	default:
		return payroll.Breakdown{}, fmt.Errorf("%w: unknown pay basis %q", payroll.ErrInvalidInput, basis)
	}

	earnings.OTAmount = otBase.Mul(
		structure.OTRateMultiplier.Mul(summary.OTHours).
			Add(structure.OTWeekendMultiplier.Mul(summary.OTWeekendHours)).
			Add(structure.OTHolidayMultiplier.Mul(summary.OTHolidayHours)),
	)
	earnings.Bonus = structure.Bonus
	earnings.Incentive = structure.Incentive

	gross := earnings.BasicEarned.
		Add(earnings.HRA).
		Add(earnings.Conveyance).
		Add(earnings.Medical).
		Add(earnings.Special).
		Add(earnings.Washing).
		Add(earnings.Education).
		Add(earnings.Other).
		Add(earnings.OTAmount).
		Add(earnings.Bonus).
		Add(earnings.Incentive)

	deductions, employer, err := CalculateDeductions(DeductionInput{
		Gross:           gross,
		EarnedBasic:     earnedBasic,
		Basis:           basis,
		PFApplicable:    structure.IsPFApplicable,
		ESIApplicable:   structure.IsESIApplicable,
		ProfessionalTax: structure.ProfessionalTax,
		Welfare:         structure.WelfareDeduction,
		TDS:             structure.TDS,
		Loan:            summary.LoanDeduction,
	})
	if err != nil {
		return payroll.Breakdown{}, err
	}

	earnings = roundEarnings(earnings)
	earnings.Gross = gross.Round(2)

	// Net is derived from the rounded figures so gross - deductions == net
	// holds exactly on what gets stored.
	net := earnings.Gross.Sub(deductions.Total)
	ctc := earnings.Gross.Add(employer.Total)

	return payroll.Breakdown{
		Earnings:              earnings,
		Deductions:            deductions,
		EmployerContributions: employer,
		NetSalary:             net,
		CTC:                   ctc,
		Metadata: payroll.Metadata{
			WorkingDays:      summary.PresentDays,
			OTHours:          summary.OTHours.Add(summary.OTWeekendHours).Add(summary.OTHolidayHours),
			TotalDaysInMonth: summary.TotalDaysInMonth,
			PaidDays:         summary.PaidDays,
		},
	}, nil
}

func validateStructure(structure salary.Structure) error {
	amounts := map[string]decimal.Decimal{
		"basic_salary":          structure.BasicSalary,
		"hourly_rate":           structure.HourlyRate,
		"contract_rate_per_day": structure.ContractRatePerDay,
		"professional_tax":      structure.ProfessionalTax,
		"tds":                   structure.TDS,
		"welfare_deduction":     structure.WelfareDeduction,
		"allowance_total":       structure.AllowanceTotal(),
		"bonus":                 structure.Bonus,
		"incentive":             structure.Incentive,
	}
	for field, v := range amounts {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s is negative", payroll.ErrInvalidInput, field)
		}
	}
	return nil
}

func roundEarnings(e payroll.Earnings) payroll.Earnings {
	e.BasicEarned = e.BasicEarned.Round(2)
	e.HRA = e.HRA.Round(2)
	e.Conveyance = e.Conveyance.Round(2)
	e.Medical = e.Medical.Round(2)
	e.Special = e.Special.Round(2)
	e.Washing = e.Washing.Round(2)
	e.Education = e.Education.Round(2)
	e.Other = e.Other.Round(2)
	e.OTAmount = e.OTAmount.Round(2)
	e.Bonus = e.Bonus.Round(2)
	e.Incentive = e.Incentive.Round(2)
	return e
}
