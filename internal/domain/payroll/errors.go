package payroll

import "errors"

var (
	ErrRecordNotFound = errors.New("payroll record not found")
	ErrRecordLocked   = errors.New("payroll record is locked for this period")
	ErrInvalidPeriod  = errors.New("invalid payroll period")
	ErrInvalidInput   = errors.New("invalid numeric input for payroll calculation")
)
