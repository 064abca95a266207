package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wintararaj-cmd/Attendance/internal/domain/attendance"
	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
	"github.com/wintararaj-cmd/Attendance/internal/domain/salary"
)

type AttendanceServiceImpl struct {
	logRepo       attendance.LogRepository
	employeeRepo  employee.EmployeeRepository
	structureRepo salary.StructureRepository

	loc    *time.Location
	policy OvertimePolicy
}

func NewAttendanceService(
	logRepo attendance.LogRepository,
	employeeRepo employee.EmployeeRepository,
	structureRepo salary.StructureRepository,
	loc *time.Location,
	policy OvertimePolicy,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		logRepo:       logRepo,
		employeeRepo:  employeeRepo,
		structureRepo: structureRepo,
		loc:           loc,
		policy:        policy,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format("2006-01-02 15:04:05")
	return &formatted
}

func (s *AttendanceServiceImpl) toLogResponse(log attendance.Log) attendance.LogResponse {
	resp := attendance.LogResponse{
		ID:               log.ID,
		EmployeeID:       log.EmployeeID,
		Date:             log.Date.In(s.loc).Format("2006-01-02"),
		CheckIn:          timePtrToString(log.CheckIn, s.loc),
		CheckOut:         timePtrToString(log.CheckOut, s.loc),
		Status:           string(log.Status),
		ConfidenceScore:  log.ConfidenceScore,
		OTHours:          log.OTHours,
		OTWeekendHours:   log.OTWeekendHours,
		OTHolidayHours:   log.OTHolidayHours,
		TotalHoursWorked: log.TotalHoursWorked,
	}
	if log.EmployeeName != nil {
		resp.EmployeeName = *log.EmployeeName
	}
	if log.EmpCode != nil {
		resp.EmpCode = *log.EmpCode
	}
	return resp
}

func (s *AttendanceServiceImpl) activeByEmpCode(ctx context.Context, empCode string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByEmpCode(ctx, empCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by emp code: %w", err)
	}
	if emp.Status != employee.StatusActive {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}
	return emp, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.MarkRequest) (attendance.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogResponse{}, err
	}

	emp, err := s.activeByEmpCode(ctx, req.EmpCode)
	if err != nil {
		return attendance.LogResponse{}, err
	}

	nowLocal := time.Now().In(s.loc)
	date := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.loc)

	_, err = s.logRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err == nil {
		return attendance.LogResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrLogNotFound) {
		return attendance.LogResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}

	checkIn := nowLocal
	log := attendance.Log{
		EmployeeID:      emp.ID,
		Date:            date,
		CheckIn:         &checkIn,
		Status:          attendance.StatusPresent,
		ConfidenceScore: req.Confidence,
	}

	created, err := s.logRepo.Create(ctx, log)
	if err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	name := emp.FullName()
	created.EmployeeName = &name
	created.EmpCode = &emp.EmpCode
	return s.toLogResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.MarkRequest) (attendance.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogResponse{}, err
	}

	emp, err := s.activeByEmpCode(ctx, req.EmpCode)
	if err != nil {
		return attendance.LogResponse{}, err
	}

	nowLocal := time.Now().In(s.loc)
	date := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.loc)

	log, err := s.logRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrLogNotFound) {
			return attendance.LogResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.LogResponse{}, fmt.Errorf("failed to get attendance log: %w", err)
	}
	if log.CheckIn == nil {
		return attendance.LogResponse{}, attendance.ErrNotCheckedIn
	}
	if log.CheckOut != nil {
		return attendance.LogResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if nowLocal.Before(*log.CheckIn) {
		return attendance.LogResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	checkOut := nowLocal
	log.CheckOut = &checkOut

	acc := AccrueOvertime(*log.CheckIn, checkOut, log.Status, s.loc, s.policy)
	log.TotalHoursWorked = acc.TotalHours
	log.OTHours = acc.OTHours
	log.OTWeekendHours = acc.OTWeekendHours
	log.OTHolidayHours = acc.OTHolidayHours

	if err := s.logRepo.Update(ctx, log); err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to update attendance log: %w", err)
	}

	name := emp.FullName()
	log.EmployeeName = &name
	log.EmpCode = &emp.EmpCode
	return s.toLogResponse(log), nil
}

// SetStatus implements attendance.AttendanceService. Changing the status of
// a closed record re-runs overtime accrual so the hours land in the bucket
// the new status implies.
func (s *AttendanceServiceImpl) SetStatus(ctx context.Context, req attendance.SetStatusRequest) (attendance.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogResponse{}, err
	}

	log, err := s.logRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrLogNotFound) {
			return attendance.LogResponse{}, err
		}
		return attendance.LogResponse{}, fmt.Errorf("failed to get attendance log: %w", err)
	}

	log.Status = attendance.Status(req.Status)

	if log.CheckIn != nil && log.CheckOut != nil {
		acc := AccrueOvertime(*log.CheckIn, *log.CheckOut, log.Status, s.loc, s.policy)
		log.TotalHoursWorked = acc.TotalHours
		log.OTHours = acc.OTHours
		log.OTWeekendHours = acc.OTWeekendHours
		log.OTHolidayHours = acc.OTHolidayHours
	}

	if err := s.logRepo.Update(ctx, log); err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to update attendance log: %w", err)
	}

	return s.toLogResponse(log), nil
}

// GetLog implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetLog(ctx context.Context, id string) (attendance.LogResponse, error) {
	log, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrLogNotFound) {
			return attendance.LogResponse{}, err
		}
		return attendance.LogResponse{}, fmt.Errorf("failed to get attendance log: %w", err)
	}
	return s.toLogResponse(log), nil
}

// ListLogs implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListLogs(ctx context.Context, filter attendance.LogFilter) (attendance.ListLogResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	logs, total, err := s.logRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListLogResponse{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	resp := attendance.ListLogResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Logs:       make([]attendance.LogResponse, 0, len(logs)),
	}
	for _, log := range logs {
		resp.Logs = append(resp.Logs, s.toLogResponse(log))
	}
	return resp, nil
}

// MonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, employeeID string, month, year int) (attendance.SummaryResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.SummaryResponse{}, err
		}
		return attendance.SummaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	hourlyBased := false
	structure, err := s.structureRepo.GetByEmployeeID(ctx, emp.ID)
	if err == nil {
		hourlyBased = structure.IsHourlyBased
	} else if !errors.Is(err, salary.ErrStructureNotFound) {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to get salary structure: %w", err)
	}
	basis := employee.ResolvePayBasis(emp.EmployeeType, hourlyBased)

	logs, err := s.logRepo.ListByEmployeeMonth(ctx, emp.ID, month, year)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	summary := Summarize(logs, basis, month, year, time.Now(), s.loc)

	return attendance.SummaryResponse{
		EmployeeID:       emp.ID,
		Month:            month,
		Year:             year,
		TotalDaysInMonth: summary.TotalDaysInMonth,
		DaysCounted:      summary.DaysCounted,
		PresentDays:      summary.PresentDays,
		PaidDays:         summary.PaidDays,
		OTHours:          summary.OTHours,
		OTWeekendHours:   summary.OTWeekendHours,
		OTHolidayHours:   summary.OTHolidayHours,
		TotalHoursWorked: summary.TotalHoursWorked,
	}, nil
}

// RecomputeHours implements attendance.AttendanceService. It re-derives the
// hour figures of every closed record in the range and persists the ones
// that changed, so older records pick up break and bucket fixes.
func (s *AttendanceServiceImpl) RecomputeHours(ctx context.Context, from, to time.Time) (int, error) {
	logs, err := s.logRepo.ListClosedBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to list closed attendance logs: %w", err)
	}

	changed := 0
	for _, log := range logs {
		acc := AccrueOvertime(*log.CheckIn, *log.CheckOut, log.Status, s.loc, s.policy)
		if log.TotalHoursWorked.Equal(acc.TotalHours) &&
			log.OTHours.Equal(acc.OTHours) &&
			log.OTWeekendHours.Equal(acc.OTWeekendHours) &&
			log.OTHolidayHours.Equal(acc.OTHolidayHours) {
			continue
		}

		log.TotalHoursWorked = acc.TotalHours
		log.OTHours = acc.OTHours
		log.OTWeekendHours = acc.OTWeekendHours
		log.OTHolidayHours = acc.OTHolidayHours

		if err := s.logRepo.Update(ctx, log); err != nil {
			return changed, fmt.Errorf("failed to update attendance log %s: %w", log.ID, err)
		}
		changed++
	}
	return changed, nil
}
