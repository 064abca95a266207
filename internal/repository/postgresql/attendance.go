package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wintararaj-cmd/Attendance/internal/domain/attendance"
	"github.com/wintararaj-cmd/Attendance/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.LogRepository {
	return &attendanceRepository{db: db}
}

const logColumns = `a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status,
	a.confidence_score, a.ot_hours, a.ot_weekend_hours, a.ot_holiday_hours,
	a.total_hours_worked, a.created_at, a.updated_at`

const logJoinedColumns = logColumns + `,
	e.first_name || ' ' || e.last_name AS employee_name, e.emp_code`

func scanLog(row pgx.Row) (attendance.Log, error) {
	var l attendance.Log
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Date, &l.CheckIn, &l.CheckOut, &l.Status,
		&l.ConfidenceScore, &l.OTHours, &l.OTWeekendHours, &l.OTHolidayHours,
		&l.TotalHoursWorked, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func scanLogJoined(row pgx.Row) (attendance.Log, error) {
	var l attendance.Log
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Date, &l.CheckIn, &l.CheckOut, &l.Status,
		&l.ConfidenceScore, &l.OTHours, &l.OTWeekendHours, &l.OTHolidayHours,
		&l.TotalHoursWorked, &l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName, &l.EmpCode,
	)
	return l, err
}

func (r *attendanceRepository) Create(ctx context.Context, log attendance.Log) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	if log.ID == "" {
		log.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_logs (
			id, employee_id, date, check_in, check_out, status,
			confidence_score, ot_hours, ot_weekend_hours, ot_holiday_hours,
			total_hours_worked, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, employee_id, date, check_in, check_out, status,
			confidence_score, ot_hours, ot_weekend_hours, ot_holiday_hours,
			total_hours_worked, created_at, updated_at
	`

	created, err := scanLog(q.QueryRow(ctx, query,
		log.ID, log.EmployeeID, log.Date, log.CheckIn, log.CheckOut, log.Status,
		log.ConfidenceScore, log.OTHours, log.OTWeekendHours, log.OTHolidayHours,
		log.TotalHoursWorked,
	))
	if err != nil {
		if isUniqueViolation(err, "attendance_logs_employee_id_date_key") {
			return attendance.Log{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Log{}, fmt.Errorf("failed to create attendance log: %w", err)
	}
	return created, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logJoinedColumns + `
		FROM attendance_logs a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	log, err := scanLogJoined(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Log{}, attendance.ErrLogNotFound
		}
		return attendance.Log{}, fmt.Errorf("failed to get attendance log: %w", err)
	}
	return log, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs a
		WHERE a.employee_id = $1 AND a.date = $2
	`

	log, err := scanLog(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Log{}, attendance.ErrLogNotFound
		}
		return attendance.Log{}, fmt.Errorf("failed to get attendance log: %w", err)
	}
	return log, nil
}

func (r *attendanceRepository) Update(ctx context.Context, log attendance.Log) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_logs SET
			check_in = $2,
			check_out = $3,
			status = $4,
			confidence_score = $5,
			ot_hours = $6,
			ot_weekend_hours = $7,
			ot_holiday_hours = $8,
			total_hours_worked = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		log.ID, log.CheckIn, log.CheckOut, log.Status, log.ConfidenceScore,
		log.OTHours, log.OTWeekendHours, log.OTHolidayHours, log.TotalHoursWorked,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrLogNotFound
	}
	return nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.LogFilter) ([]attendance.Log, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_logs a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance logs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+logJoinedColumns+`
		FROM attendance_logs a
		JOIN employees e ON e.id = a.employee_id
		WHERE `+where+`
		ORDER BY a.date DESC, e.emp_code
		LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		log, err := scanLogJoined(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance logs: %w", err)
	}

	return logs, total, nil
}

func (r *attendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs a
		WHERE a.employee_id = $1
		  AND EXTRACT(MONTH FROM a.date) = $2
		  AND EXTRACT(YEAR FROM a.date) = $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance logs: %w", err)
	}

	return logs, nil
}

func (r *attendanceRepository) ListClosedBetween(ctx context.Context, from, to time.Time) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs a
		WHERE a.date >= $1 AND a.date <= $2
		  AND a.check_in IS NOT NULL AND a.check_out IS NOT NULL
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance logs: %w", err)
	}

	return logs, nil
}
