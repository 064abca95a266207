package salary

import "errors"

var (
	ErrStructureNotFound = errors.New("salary structure not found for employee")
	ErrNegativeAmount    = errors.New("salary amounts must be non-negative")
)
