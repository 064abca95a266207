package salary

import "context"

// StructureRepository defines data access for salary structures.
type StructureRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Structure, error)
	Upsert(ctx context.Context, structure Structure) (Structure, error)
}
