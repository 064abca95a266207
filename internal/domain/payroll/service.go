package payroll

import (
	"context"
)

// PayrollService defines business logic for payroll generation and the
// record lifecycle.
type PayrollService interface {
	// Generate calculates payroll for the requested period. Existing drafts
	// are overwritten, locked records are skipped, and per-employee failures
	// are collected without aborting the batch.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)

	// GetRecord retrieves a single payroll record by ID.
	GetRecord(ctx context.Context, id string) (RecordResponse, error)

	// ListRecords retrieves payroll records with filters and pagination.
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordResponse, error)

	// LockRecord finalizes a draft record. Locked records can no longer be
	// regenerated.
	LockRecord(ctx context.Context, id string) (RecordResponse, error)

	// ExportRegister renders the period's records as an XLSX payroll
	// register and returns the file contents with a suggested filename.
	ExportRegister(ctx context.Context, month, year int) ([]byte, string, error)
}
