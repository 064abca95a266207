package salary

import (
	"context"
	"errors"
	"fmt"

	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
	"github.com/wintararaj-cmd/Attendance/internal/domain/salary"
)

type StructureServiceImpl struct {
	structureRepo salary.StructureRepository
	employeeRepo  employee.EmployeeRepository
}

func NewStructureService(
	structureRepo salary.StructureRepository,
	employeeRepo employee.EmployeeRepository,
) salary.StructureService {
	return &StructureServiceImpl{
		structureRepo: structureRepo,
		employeeRepo:  employeeRepo,
	}
}

func toStructureResponse(s salary.Structure) salary.StructureResponse {
	return salary.StructureResponse{
		ID:                  s.ID,
		EmployeeID:          s.EmployeeID,
		BasicSalary:         s.BasicSalary,
		HRA:                 s.HRA,
		ConveyanceAllowance: s.ConveyanceAllowance,
		MedicalAllowance:    s.MedicalAllowance,
		SpecialAllowance:    s.SpecialAllowance,
		WashingAllowance:    s.WashingAllowance,
		EducationAllowance:  s.EducationAllowance,
		OtherAllowance:      s.OtherAllowance,
		Bonus:               s.Bonus,
		Incentive:           s.Incentive,
		ProfessionalTax:     s.ProfessionalTax,
		TDS:                 s.TDS,
		WelfareDeduction:    s.WelfareDeduction,
		IsPFApplicable:      s.IsPFApplicable,
		IsESIApplicable:     s.IsESIApplicable,
		IsHourlyBased:       s.IsHourlyBased,
		HourlyRate:          s.HourlyRate,
		ContractRatePerDay:  s.ContractRatePerDay,
		OTRateMultiplier:    s.OTRateMultiplier,
		OTWeekendMultiplier: s.OTWeekendMultiplier,
		OTHolidayMultiplier: s.OTHolidayMultiplier,
	}
}

// GetStructure implements salary.StructureService.
func (s *StructureServiceImpl) GetStructure(ctx context.Context, employeeID string) (salary.StructureResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return salary.StructureResponse{}, err
		}
		return salary.StructureResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	structure, err := s.structureRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, salary.ErrStructureNotFound) {
			return toStructureResponse(salary.DefaultStructure(employeeID)), nil
		}
		return salary.StructureResponse{}, fmt.Errorf("failed to get salary structure: %w", err)
	}
	return toStructureResponse(structure), nil
}

// UpsertStructure implements salary.StructureService. Absent request fields
// keep their current (or default) values, so partial updates are safe.
func (s *StructureServiceImpl) UpsertStructure(ctx context.Context, req salary.UpsertStructureRequest) (salary.StructureResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.StructureResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return salary.StructureResponse{}, err
		}
		return salary.StructureResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	current, err := s.structureRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if !errors.Is(err, salary.ErrStructureNotFound) {
			return salary.StructureResponse{}, fmt.Errorf("failed to get salary structure: %w", err)
		}
		current = salary.DefaultStructure(req.EmployeeID)
	}

	saved, err := s.structureRepo.Upsert(ctx, req.Apply(current))
	if err != nil {
		return salary.StructureResponse{}, fmt.Errorf("failed to save salary structure: %w", err)
	}
	return toStructureResponse(saved), nil
}
