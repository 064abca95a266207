package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePayBasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		empType     EmployeeType
		hourlyBased bool
		want        PayBasis
	}{
		{"worker", EmployeeTypeWorker, false, PayBasisWorker},
		{"daily wage maps to worker", EmployeeTypeDailyWage, false, PayBasisWorker},
		{"worker type wins over hourly flag", EmployeeTypeWorker, true, PayBasisWorker},
		{"daily wage wins over hourly flag", EmployeeTypeDailyWage, true, PayBasisWorker},
		{"hourly part-timer", EmployeeTypePartTime, true, PayBasisHourly},
		{"hourly full-timer", EmployeeTypeFullTime, true, PayBasisHourly},
		{"contract", EmployeeTypeContract, false, PayBasisContract},
		{"hourly flag wins over contract type", EmployeeTypeContract, true, PayBasisHourly},
		{"full time defaults to staff", EmployeeTypeFullTime, false, PayBasisStaff},
		{"part time without hourly rate is staff", EmployeeTypePartTime, false, PayBasisStaff},
		{"intern is staff", EmployeeTypeIntern, false, PayBasisStaff},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolvePayBasis(tt.empType, tt.hourlyBased))
		})
	}
}

func TestPayBasisIsDailyPaid(t *testing.T) {
	t.Parallel()

	assert.True(t, PayBasisWorker.IsDailyPaid())
	assert.True(t, PayBasisHourly.IsDailyPaid())
	assert.True(t, PayBasisContract.IsDailyPaid())
	assert.False(t, PayBasisStaff.IsDailyPaid())
}

func TestFullName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ravi Kumar", Employee{FirstName: "Ravi", LastName: "Kumar"}.FullName())
	assert.Equal(t, "Ravi", Employee{FirstName: "Ravi"}.FullName())
}
