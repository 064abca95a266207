package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn opens today's record for the employee identified by emp code.
	CheckIn(ctx context.Context, req MarkRequest) (LogResponse, error)

	// CheckOut closes today's record and accrues overtime for the session.
	CheckOut(ctx context.Context, req MarkRequest) (LogResponse, error)

	// SetStatus overrides the status of an existing record (admin).
	SetStatus(ctx context.Context, req SetStatusRequest) (LogResponse, error)

	// GetLog retrieves a single attendance record by ID.
	GetLog(ctx context.Context, id string) (LogResponse, error)

	// ListLogs retrieves attendance records with filters (admin).
	ListLogs(ctx context.Context, filter LogFilter) (ListLogResponse, error)

	// MonthlySummary aggregates one employee's month into the same figures
	// payroll generation consumes.
	MonthlySummary(ctx context.Context, employeeID string, month, year int) (SummaryResponse, error)

	// RecomputeHours re-runs overtime accrual over closed records in the date
	// range and returns how many records changed. Run by the scheduler.
	RecomputeHours(ctx context.Context, from, to time.Time) (int, error)
}
