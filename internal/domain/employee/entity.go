package employee

import (
	"time"
)

type Employee struct {
	ID               string
	EmpCode          string
	FirstName        string
	LastName         string
	MobileNo         string
	Email            *string
	Department       *string
	Designation      *string
	EmployeeType     EmployeeType
	JoiningDate      *time.Time
	Status           Status
	IsFaceRegistered bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type EmployeeType string

const (
	EmployeeTypeFullTime  EmployeeType = "full_time"
	EmployeeTypePartTime  EmployeeType = "part_time"
	EmployeeTypeContract  EmployeeType = "contract"
	EmployeeTypeIntern    EmployeeType = "intern"
	EmployeeTypeWorker    EmployeeType = "worker"
	EmployeeTypeDailyWage EmployeeType = "daily_wage"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// PayBasis is the closed set of pay models the payroll engine branches on.
// It is resolved exactly once per calculation; call sites never re-derive it
// from the raw employee type string.
type PayBasis string

const (
	// PayBasisWorker is daily-rate pay: every salary component is a per-day
	// rate and only days actually present are paid.
	PayBasisWorker PayBasis = "worker"
	// PayBasisHourly is part-time pay at an hourly rate over recorded hours.
	PayBasisHourly PayBasis = "hourly"
	// PayBasisContract is a flat per-day contract rate over days present.
	PayBasisContract PayBasis = "contract"
	// PayBasisStaff is a fixed monthly salary with pro-rata loss of pay.
	PayBasisStaff PayBasis = "staff"
)

// ResolvePayBasis decides which pay model applies to an employee. The
// employee type wins over the hourly flag for worker/daily-wage employees
// so a stray is_hourly_based flag cannot blend two models.
func ResolvePayBasis(empType EmployeeType, hourlyBased bool) PayBasis {
	switch empType {
	case EmployeeTypeWorker, EmployeeTypeDailyWage:
		return PayBasisWorker
	}
	if hourlyBased {
		return PayBasisHourly
	}
	if empType == EmployeeTypeContract {
		return PayBasisContract
	}
	return PayBasisStaff
}

// IsDailyPaid reports whether the basis pays per day or hour rather than a
// fixed monthly amount. Daily-paid employees get no default paid weekend.
func (b PayBasis) IsDailyPaid() bool {
	return b != PayBasisStaff
}
