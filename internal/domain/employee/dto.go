package employee

import (
	"github.com/wintararaj-cmd/Attendance/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmpCode      string  `json:"emp_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	MobileNo     string  `json:"mobile_no"`
	Email        *string `json:"email,omitempty"`
	Department   *string `json:"department,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	EmployeeType string  `json:"employee_type"`
	JoiningDate  *string `json:"joining_date,omitempty"`
}

var validEmployeeTypes = []string{
	string(EmployeeTypeFullTime),
	string(EmployeeTypePartTime),
	string(EmployeeTypeContract),
	string(EmployeeTypeIntern),
	string(EmployeeTypeWorker),
	string(EmployeeTypeDailyWage),
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpCode) {
		errs = append(errs, validator.ValidationError{Field: "emp_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.MobileNo) {
		errs = append(errs, validator.ValidationError{Field: "mobile_no", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if r.EmployeeType != "" && !validator.IsInSlice(r.EmployeeType, validEmployeeTypes) {
		errs = append(errs, validator.ValidationError{Field: "employee_type", Message: "is not a recognized employee type"})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmpCode          string  `json:"emp_code"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	MobileNo         string  `json:"mobile_no"`
	Email            *string `json:"email,omitempty"`
	Department       *string `json:"department,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	EmployeeType     string  `json:"employee_type"`
	PayBasis         string  `json:"pay_basis"`
	JoiningDate      *string `json:"joining_date,omitempty"`
	Status           string  `json:"status"`
	IsFaceRegistered bool    `json:"is_face_registered"`
}

type EmployeeFilter struct {
	Status     *string
	Department *string
	Page       int
	Limit      int
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}
