package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
	"github.com/wintararaj-cmd/Attendance/internal/domain/salary"
)

type EmployeeServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	structureRepo salary.StructureRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	structureRepo salary.StructureRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:  employeeRepo,
		structureRepo: structureRepo,
	}
}

func toEmployeeResponse(emp employee.Employee, hourlyBased bool) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               emp.ID,
		EmpCode:          emp.EmpCode,
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		MobileNo:         emp.MobileNo,
		Email:            emp.Email,
		Department:       emp.Department,
		Designation:      emp.Designation,
		EmployeeType:     string(emp.EmployeeType),
		PayBasis:         string(employee.ResolvePayBasis(emp.EmployeeType, hourlyBased)),
		Status:           string(emp.Status),
		IsFaceRegistered: emp.IsFaceRegistered,
	}
	if emp.JoiningDate != nil {
		d := emp.JoiningDate.Format("2006-01-02")
		resp.JoiningDate = &d
	}
	return resp
}

// CreateEmployee implements employee.EmployeeService. A default salary
// structure is saved alongside so payroll can run before HR configures pay.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmpCode(ctx, req.EmpCode); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmpCodeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check emp code: %w", err)
	}

	empType := employee.EmployeeType(req.EmployeeType)
	if req.EmployeeType == "" {
		empType = employee.EmployeeTypeFullTime
	}

	emp := employee.Employee{
		EmpCode:      req.EmpCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MobileNo:     req.MobileNo,
		Email:        req.Email,
		Department:   req.Department,
		Designation:  req.Designation,
		EmployeeType: empType,
		Status:       employee.StatusActive,
	}
	if req.JoiningDate != nil {
		if d, err := time.Parse("2006-01-02", *req.JoiningDate); err == nil {
			emp.JoiningDate = &d
		}
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	structure, err := s.structureRepo.Upsert(ctx, salary.DefaultStructure(created.ID))
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create default salary structure: %w", err)
	}

	return toEmployeeResponse(created, structure.IsHourlyBased), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	hourlyBased := false
	if structure, err := s.structureRepo.GetByEmployeeID(ctx, emp.ID); err == nil {
		hourlyBased = structure.IsHourlyBased
	} else if !errors.Is(err, salary.ErrStructureNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return toEmployeeResponse(emp, hourlyBased), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		// The directory listing resolves pay basis from the employee type
		// alone; the hourly flag only shows on the detail view.
		resp.Employees = append(resp.Employees, toEmployeeResponse(emp, false))
	}
	return resp, nil
}
