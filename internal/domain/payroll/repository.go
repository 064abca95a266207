package payroll

import "context"

// RecordRepository defines data access for persisted payroll records.
type RecordRepository interface {
	// UpsertDraft inserts or overwrites the record for the record's
	// (employee, month, year). The update only applies while the stored
	// record is still a draft; a locked record yields ErrRecordLocked.
	UpsertDraft(ctx context.Context, record Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Record, error)

	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)

	// ListByPeriod retrieves all records of a period, ordered by employee
	// code, for the register export.
	ListByPeriod(ctx context.Context, month, year int) ([]Record, error)

	// Lock transitions a draft record to locked. Locking an already locked
	// record yields ErrRecordLocked.
	Lock(ctx context.Context, id string, lockedBy string) (Record, error)
}
