package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
	"github.com/wintararaj-cmd/Attendance/internal/domain/payroll"
)

func TestCalculateDeductions_PFCapsAtWageCeiling(t *testing.T) {
	t.Parallel()

	d, employer, err := CalculateDeductions(DeductionInput{
		Gross:        dec("40000"),
		EarnedBasic:  dec("22000"),
		Basis:        employee.PayBasisStaff,
		PFApplicable: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "1800.00", d.PF.StringFixed(2))
	assert.Equal(t, "1800.00", employer.PF.StringFixed(2))
}

func TestCalculateDeductions_PFBelowCeilingUsesEarnedBasic(t *testing.T) {
	t.Parallel()

	d, _, err := CalculateDeductions(DeductionInput{
		Gross:        dec("14000"),
		EarnedBasic:  dec("9500"),
		Basis:        employee.PayBasisWorker,
		PFApplicable: true,
		Welfare:      dec("3"),
	})
	require.NoError(t, err)

	assert.Equal(t, "1140.00", d.PF.StringFixed(2))
}

func TestCalculateDeductions_PFSkipped(t *testing.T) {
	t.Parallel()

	t.Run("not opted in", func(t *testing.T) {
		t.Parallel()
		d, employer, err := CalculateDeductions(DeductionInput{
			Gross:       dec("30000"),
			EarnedBasic: dec("20000"),
			Basis:       employee.PayBasisStaff,
		})
		require.NoError(t, err)
		assert.True(t, d.PF.IsZero())
		assert.True(t, employer.PF.IsZero())
	})

	t.Run("zero earned basic", func(t *testing.T) {
		t.Parallel()
		d, _, err := CalculateDeductions(DeductionInput{
			Basis:        employee.PayBasisWorker,
			PFApplicable: true,
		})
		require.NoError(t, err)
		assert.True(t, d.PF.IsZero())
	})
}

func TestCalculateDeductions_ESIRoundsUpToTheRupee(t *testing.T) {
	t.Parallel()

	// 16375 * 0.0075 = 122.8125 and 16375 * 0.0325 = 532.1875: both shares
	// round up to whole rupees.
	d, employer, err := CalculateDeductions(DeductionInput{
		Gross:         dec("16375"),
		EarnedBasic:   dec("10000"),
		Basis:         employee.PayBasisWorker,
		ESIApplicable: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "123", d.ESI.String())
	assert.Equal(t, "533", employer.ESI.String())
}

func TestCalculateDeductions_ESIIncomeTest(t *testing.T) {
	t.Parallel()

	t.Run("applies under the ceiling without the flag", func(t *testing.T) {
		t.Parallel()
		d, _, err := CalculateDeductions(DeductionInput{
			Gross: dec("20000"),
			Basis: employee.PayBasisStaff,
		})
		require.NoError(t, err)
		assert.Equal(t, "150", d.ESI.String())
	})

	t.Run("skipped over the ceiling without the flag", func(t *testing.T) {
		t.Parallel()
		d, _, err := CalculateDeductions(DeductionInput{
			Gross: dec("21001"),
			Basis: employee.PayBasisStaff,
		})
		require.NoError(t, err)
		assert.True(t, d.ESI.IsZero())
	})

	t.Run("flag keeps it on over the ceiling", func(t *testing.T) {
		t.Parallel()
		d, _, err := CalculateDeductions(DeductionInput{
			Gross:         dec("24000"),
			Basis:         employee.PayBasisStaff,
			ESIApplicable: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "180", d.ESI.String())
	})

	t.Run("never on zero gross", func(t *testing.T) {
		t.Parallel()
		d, _, err := CalculateDeductions(DeductionInput{
			Basis:         employee.PayBasisWorker,
			ESIApplicable: true,
		})
		require.NoError(t, err)
		assert.True(t, d.ESI.IsZero())
	})
}

func TestCalculateDeductions_ProfessionalTax(t *testing.T) {
	t.Parallel()

	t.Run("configured amount wins", func(t *testing.T) {
		t.Parallel()
		d, _, err := CalculateDeductions(DeductionInput{
			Gross:           dec("30000"),
			Basis:           employee.PayBasisStaff,
			ProfessionalTax: dec("150"),
		})
		require.NoError(t, err)
		assert.Equal(t, "150.00", d.ProfTax.StringFixed(2))
	})

	t.Run("default above the threshold", func(t *testing.T) {
		t.Parallel()
		d, _, err := CalculateDeductions(DeductionInput{
			Gross: dec("10001"),
			Basis: employee.PayBasisStaff,
		})
		require.NoError(t, err)
		assert.Equal(t, "200.00", d.ProfTax.StringFixed(2))
	})

	t.Run("nothing at or below the threshold", func(t *testing.T) {
		t.Parallel()
		d, _, err := CalculateDeductions(DeductionInput{
			Gross: dec("10000"),
			Basis: employee.PayBasisWorker,
		})
		require.NoError(t, err)
		assert.True(t, d.ProfTax.IsZero())
	})
}

func TestCalculateDeductions_Welfare(t *testing.T) {
	t.Parallel()

	t.Run("configured amount wins", func(t *testing.T) {
		t.Parallel()
		d, _, err := CalculateDeductions(DeductionInput{
			Gross:   dec("9000"),
			Basis:   employee.PayBasisWorker,
			Welfare: dec("10"),
		})
		require.NoError(t, err)
		assert.Equal(t, "10.00", d.Welfare.StringFixed(2))
	})

	t.Run("flat default for workers and staff", func(t *testing.T) {
		t.Parallel()
		for _, basis := range []employee.PayBasis{employee.PayBasisWorker, employee.PayBasisStaff} {
			d, _, err := CalculateDeductions(DeductionInput{
				Gross: dec("9000"),
				Basis: basis,
			})
			require.NoError(t, err)
			assert.Equal(t, "3.00", d.Welfare.StringFixed(2))
		}
	})

	t.Run("no default for hourly and contract", func(t *testing.T) {
		t.Parallel()
		for _, basis := range []employee.PayBasis{employee.PayBasisHourly, employee.PayBasisContract} {
			d, _, err := CalculateDeductions(DeductionInput{
				Gross: dec("9000"),
				Basis: basis,
			})
			require.NoError(t, err)
			assert.True(t, d.Welfare.IsZero())
		}
	})
}

func TestCalculateDeductions_TotalMatchesComponents(t *testing.T) {
	t.Parallel()

	d, employer, err := CalculateDeductions(DeductionInput{
		Gross:           dec("19876.54"),
		EarnedBasic:     dec("12345.67"),
		Basis:           employee.PayBasisStaff,
		PFApplicable:    true,
		ProfessionalTax: dec("175"),
		TDS:             dec("500"),
		Loan:            dec("1250"),
	})
	require.NoError(t, err)

	sum := d.PF.Add(d.ESI).Add(d.ProfTax).Add(d.Welfare).Add(d.TDS).Add(d.Loan)
	assert.True(t, sum.Equal(d.Total))
	assert.True(t, employer.PF.Add(employer.ESI).Equal(employer.Total))
}

func TestCalculateDeductions_NegativeInputRejected(t *testing.T) {
	t.Parallel()

	_, _, err := CalculateDeductions(DeductionInput{
		Gross: dec("1000"),
		Basis: employee.PayBasisWorker,
		Loan:  dec("-1"),
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidInput)
}
