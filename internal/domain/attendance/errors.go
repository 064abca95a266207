package attendance

import "errors"

var (
	ErrAlreadyCheckedIn      = errors.New("employee has already checked in today")
	ErrNotCheckedIn          = errors.New("employee has not checked in today")
	ErrAlreadyCheckedOut     = errors.New("employee has already checked out today")
	ErrCheckOutBeforeCheckIn = errors.New("check-out must not be before check-in")
	ErrLogNotFound           = errors.New("attendance record not found")
	ErrInvalidStatus         = errors.New("invalid attendance status")
)
