package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee directory.
type EmployeeService interface {
	// CreateEmployee registers a new employee. Emp code and mobile number
	// must be unique.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees retrieves employees with filters and pagination.
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
}
