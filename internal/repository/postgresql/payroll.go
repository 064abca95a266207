package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wintararaj-cmd/Attendance/internal/domain/payroll"
	"github.com/wintararaj-cmd/Attendance/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.RecordRepository {
	return &payrollRepository{db: db}
}

const recordColumns = `p.id, p.employee_id, p.period_month, p.period_year,
	p.breakdown, p.status, p.locked_at, p.locked_by, p.created_at, p.updated_at`

const recordJoinedColumns = recordColumns + `,
	e.first_name || ' ' || e.last_name AS employee_name, e.emp_code`

func scanRecord(row pgx.Row, joined bool) (payroll.Record, error) {
	var rec payroll.Record
	var breakdownJSON []byte

	dest := []interface{}{
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear,
		&breakdownJSON, &rec.Status, &rec.LockedAt, &rec.LockedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if joined {
		dest = append(dest, &rec.EmployeeName, &rec.EmpCode)
	}

	if err := row.Scan(dest...); err != nil {
		return payroll.Record{}, err
	}
	if err := json.Unmarshal(breakdownJSON, &rec.Breakdown); err != nil {
		return payroll.Record{}, fmt.Errorf("failed to decode payroll breakdown: %w", err)
	}
	return rec, nil
}

// UpsertDraft writes the record, but the conflict update is conditional on
// the stored status still being draft. A locked row survives untouched and
// the statement returns no row, which maps to ErrRecordLocked.
func (r *payrollRepository) UpsertDraft(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	breakdownJSON, err := json.Marshal(record.Breakdown)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to encode payroll breakdown: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_month, period_year,
			breakdown, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, 'draft', NOW(), NOW())
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			breakdown = EXCLUDED.breakdown,
			updated_at = NOW()
		WHERE payroll_records.status = 'draft'
		RETURNING id, employee_id, period_month, period_year,
			breakdown, status, locked_at, locked_by, created_at, updated_at
	`

	row := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.PeriodMonth, record.PeriodYear, breakdownJSON,
	)
	saved, err := scanRecord(row, false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordLocked
		}
		return payroll.Record{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}
	return saved, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordJoinedColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordJoinedColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, month, year), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.PeriodMonth != nil {
		conditions = append(conditions, fmt.Sprintf("p.period_month = $%d", argIdx))
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.PeriodYear != nil {
		conditions = append(conditions, fmt.Sprintf("p.period_year = $%d", argIdx))
		args = append(args, *filter.PeriodYear)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM payroll_records p WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+recordJoinedColumns+`
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE `+where+`
		ORDER BY p.period_year DESC, p.period_month DESC, e.emp_code
		LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, total, nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, month, year int) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordJoinedColumns + `
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.period_month = $1 AND p.period_year = $2
		ORDER BY e.emp_code
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, nil
}

func (r *payrollRepository) Lock(ctx context.Context, id string, lockedBy string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records SET
			status = 'locked',
			locked_at = NOW(),
			locked_by = $2,
			updated_at = NOW()
		WHERE id = $1 AND status = 'draft'
		RETURNING id, employee_id, period_month, period_year,
			breakdown, status, locked_at, locked_by, created_at, updated_at
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id, lockedBy), false)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return payroll.Record{}, fmt.Errorf("failed to lock payroll record: %w", err)
	}

	// No draft row matched: distinguish missing from already locked.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return payroll.Record{}, getErr
	}
	return payroll.Record{}, payroll.ErrRecordLocked
}
