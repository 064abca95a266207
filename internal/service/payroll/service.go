package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/wintararaj-cmd/Attendance/internal/domain/attendance"
	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
	"github.com/wintararaj-cmd/Attendance/internal/domain/payroll"
	"github.com/wintararaj-cmd/Attendance/internal/domain/salary"
	attendancesvc "github.com/wintararaj-cmd/Attendance/internal/service/attendance"
)

type PayrollServiceImpl struct {
	recordRepo    payroll.RecordRepository
	employeeRepo  employee.EmployeeRepository
	structureRepo salary.StructureRepository
	logRepo       attendance.LogRepository

	loc *time.Location
}

func NewPayrollService(
	recordRepo payroll.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	structureRepo salary.StructureRepository,
	logRepo attendance.LogRepository,
	loc *time.Location,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		recordRepo:    recordRepo,
		employeeRepo:  employeeRepo,
		structureRepo: structureRepo,
		logRepo:       logRepo,
		loc:           loc,
	}
}

// usernameFromContext pulls the acting admin's username out of the JWT.
func usernameFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	username, _ := claims["username"].(string)
	return username
}

func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format("2006-01-02 15:04:05")
	return &formatted
}

func (s *PayrollServiceImpl) toRecordResponse(record payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:          record.ID,
		EmployeeID:  record.EmployeeID,
		PeriodMonth: record.PeriodMonth,
		PeriodYear:  record.PeriodYear,
		Payroll:     record.Breakdown,
		Status:      string(record.Status),
		LockedAt:    timePtrToString(record.LockedAt, s.loc),
	}
	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	if record.EmpCode != nil {
		resp.EmpCode = *record.EmpCode
	}
	return resp
}

// calculateForEmployee derives one employee's breakdown for the period. It
// performs reads only; persistence is the caller's concern.
func (s *PayrollServiceImpl) calculateForEmployee(ctx context.Context, emp employee.Employee, month, year int, today time.Time) (payroll.Breakdown, error) {
	structure, err := s.structureRepo.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		if !errors.Is(err, salary.ErrStructureNotFound) {
			return payroll.Breakdown{}, fmt.Errorf("failed to get salary structure: %w", err)
		}
		// No saved structure: the documented defaults still produce a valid,
		// all-zero breakdown instead of failing the employee.
		structure = salary.DefaultStructure(emp.ID)
	}

	basis := employee.ResolvePayBasis(emp.EmployeeType, structure.IsHourlyBased)

	logs, err := s.logRepo.ListByEmployeeMonth(ctx, emp.ID, month, year)
	if err != nil {
		return payroll.Breakdown{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	summary := attendancesvc.Summarize(logs, basis, month, year, today, s.loc)

	return CalculateBreakdown(structure, summary, basis)
}

// Generate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResult{}, err
	}

	today := time.Now().In(s.loc)
	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, s.loc)
	if periodStart.After(today) {
		return payroll.GenerateResult{}, payroll.ErrInvalidPeriod
	}

	var employees []employee.Employee
	if len(req.EmployeeIDs) > 0 {
		for _, id := range req.EmployeeIDs {
			emp, err := s.employeeRepo.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, employee.ErrEmployeeNotFound) {
					return payroll.GenerateResult{}, err
				}
				return payroll.GenerateResult{}, fmt.Errorf("failed to get employee: %w", err)
			}
			employees = append(employees, emp)
		}
	} else {
		var err error
		employees, err = s.employeeRepo.GetActive(ctx)
		if err != nil {
			return payroll.GenerateResult{}, fmt.Errorf("failed to list active employees: %w", err)
		}
	}

	result := payroll.GenerateResult{}

	// One employee's failure never aborts the batch: errors are collected
	// and whatever succeeded stays committed.
	for _, emp := range employees {
		breakdown, err := s.calculateForEmployee(ctx, emp, req.Month, req.Year, today)
		if err != nil {
			result.Errors = append(result.Errors, payroll.GenerationError{
				EmployeeID: emp.ID,
				Error:      err.Error(),
			})
			continue
		}

		saved, err := s.recordRepo.UpsertDraft(ctx, payroll.Record{
			EmployeeID:  emp.ID,
			PeriodMonth: req.Month,
			PeriodYear:  req.Year,
			Breakdown:   breakdown,
			Status:      payroll.RecordStatusDraft,
		})
		if err != nil {
			if errors.Is(err, payroll.ErrRecordLocked) {
				result.Skipped = append(result.Skipped, emp.ID)
				continue
			}
			result.Errors = append(result.Errors, payroll.GenerationError{
				EmployeeID: emp.ID,
				Error:      err.Error(),
			})
			continue
		}

		name := emp.FullName()
		saved.EmployeeName = &name
		saved.EmpCode = &emp.EmpCode

		result.Generated++
		result.Records = append(result.Records, s.toRecordResponse(saved))
	}

	return result, nil
}

// GetRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrRecordNotFound) {
			return payroll.RecordResponse{}, err
		}
		return payroll.RecordResponse{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return s.toRecordResponse(record), nil
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) (payroll.ListRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.recordRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListRecordResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	resp := payroll.ListRecordResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    make([]payroll.RecordResponse, 0, len(records)),
	}
	for _, record := range records {
		resp.Records = append(resp.Records, s.toRecordResponse(record))
	}
	return resp, nil
}

// LockRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) LockRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	record, err := s.recordRepo.Lock(ctx, id, usernameFromContext(ctx))
	if err != nil {
		if errors.Is(err, payroll.ErrRecordNotFound) || errors.Is(err, payroll.ErrRecordLocked) {
			return payroll.RecordResponse{}, err
		}
		return payroll.RecordResponse{}, fmt.Errorf("failed to lock payroll record: %w", err)
	}
	return s.toRecordResponse(record), nil
}
