package salary

import (
	"context"
)

// StructureService defines business logic for salary structures.
type StructureService interface {
	// GetStructure retrieves an employee's salary structure. An employee
	// without a saved structure gets the documented defaults back.
	GetStructure(ctx context.Context, employeeID string) (StructureResponse, error)

	// UpsertStructure creates or partially updates an employee's structure.
	UpsertStructure(ctx context.Context, req UpsertStructureRequest) (StructureResponse, error)
}
