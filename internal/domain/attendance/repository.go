package attendance

import (
	"context"
	"time"
)

// LogRepository defines data access methods for attendance logs.
type LogRepository interface {
	Create(ctx context.Context, log Log) (Log, error)

	GetByID(ctx context.Context, id string) (Log, error)

	// GetByEmployeeAndDate retrieves the single record for an employee on a
	// calendar date, or ErrLogNotFound. Used to prevent double check-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Log, error)

	Update(ctx context.Context, log Log) error

	List(ctx context.Context, filter LogFilter) ([]Log, int64, error)

	// ListByEmployeeMonth retrieves every record for an employee within a
	// month, ordered by date.
	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]Log, error)

	// ListClosedBetween retrieves records with both check-in and check-out
	// set in the date range, for the overtime recompute pass.
	ListClosedBetween(ctx context.Context, from, to time.Time) ([]Log, error)
}
