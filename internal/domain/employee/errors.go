package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is not active")
	ErrEmpCodeExists    = errors.New("employee code already exists")
	ErrMobileNoExists   = errors.New("mobile number already registered")
)
