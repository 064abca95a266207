package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
	"github.com/wintararaj-cmd/Attendance/internal/domain/payroll"
	"github.com/wintararaj-cmd/Attendance/internal/domain/salary"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateBreakdown_WorkerDailyRates(t *testing.T) {
	t.Parallel()

	// Daily rates: 500 basic + 100 HRA + 50 conveyance + 20 washing +
	// 10 education + 20 other = 700/day. 20 days present, 10 OT hours at a
	// 1.0 multiplier off the 87.5 hourly base.
	structure := salary.Structure{
		EmployeeID:         "emp-1",
		BasicSalary:        dec("500"),
		HRA:                dec("100"),
		ConveyanceAllowance: dec("50"),
		WashingAllowance:   dec("20"),
		EducationAllowance: dec("10"),
		OtherAllowance:     dec("20"),
		Bonus:              dec("1000"),
		Incentive:          dec("500"),
		WelfareDeduction:   dec("3"),
		IsPFApplicable:     true,
		IsESIApplicable:    true,
		OTRateMultiplier:   dec("1.0"),
	}
	summary := payroll.MonthlySummary{
		TotalDaysInMonth: 30,
		DaysCounted:      30,
		PresentDays:      dec("20"),
		PaidDays:         dec("20"),
		OTHours:          dec("10"),
	}

	b, err := CalculateBreakdown(structure, summary, employee.PayBasisWorker)
	require.NoError(t, err)

	assert.Equal(t, "10000.00", b.Earnings.BasicEarned.StringFixed(2))
	assert.Equal(t, "2000.00", b.Earnings.HRA.StringFixed(2))
	assert.Equal(t, "875.00", b.Earnings.OTAmount.StringFixed(2))
	assert.Equal(t, "16375.00", b.Earnings.Gross.StringFixed(2))

	assert.Equal(t, "1200.00", b.Deductions.PF.StringFixed(2))
	assert.Equal(t, "123.00", b.Deductions.ESI.StringFixed(2))
	assert.Equal(t, "200.00", b.Deductions.ProfTax.StringFixed(2))
	assert.Equal(t, "3.00", b.Deductions.Welfare.StringFixed(2))
	assert.Equal(t, "1526.00", b.Deductions.Total.StringFixed(2))

	assert.Equal(t, "14849.00", b.NetSalary.StringFixed(2))

	assert.Equal(t, "1200.00", b.EmployerContributions.PF.StringFixed(2))
	assert.Equal(t, "533.00", b.EmployerContributions.ESI.StringFixed(2))
}

func TestCalculateBreakdown_StaffLossOfPay(t *testing.T) {
	t.Parallel()

	// Fixed monthly 24000 (18000 basic + 6000 allowances), 28 of 30 days
	// paid. Every component is paid pro rata at 28/30.
	structure := salary.Structure{
		EmployeeID:          "emp-2",
		BasicSalary:         dec("18000"),
		HRA:                 dec("3600"),
		ConveyanceAllowance: dec("1800"),
		WashingAllowance:    dec("600"),
		IsPFApplicable:      true,
		OTRateMultiplier:    dec("1.5"),
		OTWeekendMultiplier: dec("2.0"),
		OTHolidayMultiplier: dec("2.5"),
	}
	summary := payroll.MonthlySummary{
		TotalDaysInMonth: 30,
		DaysCounted:      30,
		PresentDays:      dec("20"),
		PaidDays:         dec("28"),
	}

	b, err := CalculateBreakdown(structure, summary, employee.PayBasisStaff)
	require.NoError(t, err)

	assert.Equal(t, "16800.00", b.Earnings.BasicEarned.StringFixed(2))
	assert.Equal(t, "3360.00", b.Earnings.HRA.StringFixed(2))
	assert.Equal(t, "1680.00", b.Earnings.Conveyance.StringFixed(2))
	assert.Equal(t, "560.00", b.Earnings.Washing.StringFixed(2))
	assert.Equal(t, "22400.00", b.Earnings.Gross.StringFixed(2))

	// Earned basic 16800 capped at the 15000 PF ceiling.
	assert.Equal(t, "1800.00", b.Deductions.PF.StringFixed(2))
	// Gross over 21000 and ESI not opted in.
	assert.True(t, b.Deductions.ESI.IsZero())
	assert.Equal(t, "200.00", b.Deductions.ProfTax.StringFixed(2))
	assert.Equal(t, "3.00", b.Deductions.Welfare.StringFixed(2))
	assert.Equal(t, "2003.00", b.Deductions.Total.StringFixed(2))
	assert.Equal(t, "20397.00", b.NetSalary.StringFixed(2))
}

func TestCalculateBreakdown_StaffOvertimeBase(t *testing.T) {
	t.Parallel()

	// Staff overtime is basic/240 per hour: 24000/240 = 100, at 1.5x for
	// 4 regular hours = 600.
	structure := salary.Structure{
		EmployeeID:          "emp-3",
		BasicSalary:         dec("24000"),
		IsPFApplicable:      false,
		OTRateMultiplier:    dec("1.5"),
		OTWeekendMultiplier: dec("2.0"),
		OTHolidayMultiplier: dec("2.5"),
	}
	summary := payroll.MonthlySummary{
		TotalDaysInMonth: 30,
		DaysCounted:      30,
		PresentDays:      dec("22"),
		PaidDays:         dec("30"),
		OTHours:          dec("4"),
	}

	b, err := CalculateBreakdown(structure, summary, employee.PayBasisStaff)
	require.NoError(t, err)

	assert.Equal(t, "600.00", b.Earnings.OTAmount.StringFixed(2))
	assert.Equal(t, "24000.00", b.Earnings.BasicEarned.StringFixed(2), "full attendance means no loss of pay")
}

func TestCalculateBreakdown_HourlyPaysRecordedHours(t *testing.T) {
	t.Parallel()

	// 150/hour over 166 base hours, plus OT hours paid at their
	// multipliers: 150*(1.5*10 + 2*4) = 3450.
	structure := salary.Structure{
		EmployeeID:          "emp-4",
		IsHourlyBased:       true,
		HourlyRate:          dec("150"),
		OTRateMultiplier:    dec("1.5"),
		OTWeekendMultiplier: dec("2.0"),
		OTHolidayMultiplier: dec("2.5"),
	}
	summary := payroll.MonthlySummary{
		TotalDaysInMonth: 30,
		DaysCounted:      30,
		PresentDays:      dec("21"),
		PaidDays:         dec("21"),
		OTHours:          dec("10"),
		OTWeekendHours:   dec("4"),
		TotalHoursWorked: dec("180"),
	}

	b, err := CalculateBreakdown(structure, summary, employee.PayBasisHourly)
	require.NoError(t, err)

	assert.Equal(t, "24900.00", b.Earnings.BasicEarned.StringFixed(2))
	assert.Equal(t, "3450.00", b.Earnings.OTAmount.StringFixed(2))
	assert.Equal(t, "28350.00", b.Earnings.Gross.StringFixed(2))
	// Hourly part-timers get no welfare default.
	assert.True(t, b.Deductions.Welfare.IsZero())
}

func TestCalculateBreakdown_ContractFlatDayRate(t *testing.T) {
	t.Parallel()

	structure := salary.Structure{
		EmployeeID:         "emp-5",
		ContractRatePerDay: dec("1500"),
		OTRateMultiplier:   dec("1.5"),
	}
	summary := payroll.MonthlySummary{
		TotalDaysInMonth: 30,
		DaysCounted:      30,
		PresentDays:      dec("22"),
		PaidDays:         dec("22"),
	}

	b, err := CalculateBreakdown(structure, summary, employee.PayBasisContract)
	require.NoError(t, err)

	assert.Equal(t, "33000.00", b.Earnings.BasicEarned.StringFixed(2))
	assert.Equal(t, "33000.00", b.Earnings.Gross.StringFixed(2))
	assert.Equal(t, "200.00", b.Deductions.ProfTax.StringFixed(2))
	assert.True(t, b.Deductions.Welfare.IsZero())
}

func TestCalculateBreakdown_ZeroPresentDaysWorker(t *testing.T) {
	t.Parallel()

	structure := salary.Structure{
		EmployeeID:     "emp-6",
		BasicSalary:    dec("500"),
		IsPFApplicable: true,
	}
	summary := payroll.MonthlySummary{TotalDaysInMonth: 30, DaysCounted: 30}

	b, err := CalculateBreakdown(structure, summary, employee.PayBasisWorker)
	require.NoError(t, err)

	assert.True(t, b.Earnings.Gross.IsZero())
	assert.True(t, b.Deductions.PF.IsZero())
	assert.True(t, b.Deductions.ESI.IsZero(), "zero gross must not trigger the ESI income test")
	// Welfare still applies to workers.
	assert.Equal(t, "3.00", b.Deductions.Welfare.StringFixed(2))
	assert.Equal(t, "-3.00", b.NetSalary.StringFixed(2))
}

func TestCalculateBreakdown_ZeroTotalDaysFallsBack(t *testing.T) {
	t.Parallel()

	structure := salary.Structure{
		EmployeeID:  "emp-7",
		BasicSalary: dec("30000"),
	}
	summary := payroll.MonthlySummary{
		TotalDaysInMonth: 0,
		PresentDays:      dec("30"),
		PaidDays:         dec("30"),
	}

	// Division guard: a zero-day month divides by the 30-day fallback
	// instead of blowing up.
	b, err := CalculateBreakdown(structure, summary, employee.PayBasisStaff)
	require.NoError(t, err)
	assert.Equal(t, "30000.00", b.Earnings.BasicEarned.StringFixed(2))
}

func TestCalculateBreakdown_NetReconcilesWithGross(t *testing.T) {
	t.Parallel()

	structure := salary.Structure{
		EmployeeID:          "emp-8",
		BasicSalary:         dec("333.33"),
		HRA:                 dec("66.67"),
		Bonus:               dec("123.45"),
		IsPFApplicable:      true,
		IsESIApplicable:     true,
		OTRateMultiplier:    dec("1.5"),
		OTWeekendMultiplier: dec("2.0"),
		OTHolidayMultiplier: dec("2.5"),
	}
	summary := payroll.MonthlySummary{
		TotalDaysInMonth: 31,
		DaysCounted:      31,
		PresentDays:      dec("23.5"),
		PaidDays:         dec("23.5"),
		OTHours:          dec("7.25"),
		OTWeekendHours:   dec("3"),
	}

	b, err := CalculateBreakdown(structure, summary, employee.PayBasisWorker)
	require.NoError(t, err)

	// The stored figures reconcile exactly at 2 decimals.
	assert.True(t, b.Earnings.Gross.Sub(b.Deductions.Total).Equal(b.NetSalary))
	assert.True(t, b.CTC.Equal(b.Earnings.Gross.Add(b.EmployerContributions.Total)))
	sum := b.Deductions.PF.Add(b.Deductions.ESI).Add(b.Deductions.ProfTax).
		Add(b.Deductions.Welfare).Add(b.Deductions.TDS).Add(b.Deductions.Loan)
	assert.True(t, sum.Equal(b.Deductions.Total))
}

func TestCalculateBreakdown_Deterministic(t *testing.T) {
	t.Parallel()

	structure := salary.Structure{
		EmployeeID:       "emp-9",
		BasicSalary:      dec("700"),
		IsPFApplicable:   true,
		OTRateMultiplier: dec("1.5"),
	}
	summary := payroll.MonthlySummary{
		TotalDaysInMonth: 30,
		DaysCounted:      30,
		PresentDays:      dec("18.5"),
		PaidDays:         dec("18.5"),
		OTHours:          dec("6"),
	}

	first, err := CalculateBreakdown(structure, summary, employee.PayBasisWorker)
	require.NoError(t, err)
	second, err := CalculateBreakdown(structure, summary, employee.PayBasisWorker)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateBreakdown_NegativeConfigRejected(t *testing.T) {
	t.Parallel()

	structure := salary.Structure{
		EmployeeID:  "emp-10",
		BasicSalary: dec("-1"),
	}
	summary := payroll.MonthlySummary{TotalDaysInMonth: 30}

	_, err := CalculateBreakdown(structure, summary, employee.PayBasisWorker)
	assert.ErrorIs(t, err, payroll.ErrInvalidInput)
}

func TestCalculateBreakdown_UnknownBasisRejected(t *testing.T) {
	t.Parallel()

	_, err := CalculateBreakdown(salary.Structure{}, payroll.MonthlySummary{TotalDaysInMonth: 30}, employee.PayBasis("freelance"))
	assert.ErrorIs(t, err, payroll.ErrInvalidInput)
}
