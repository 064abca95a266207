package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wintararaj-cmd/Attendance/internal/domain/salary"
	"github.com/wintararaj-cmd/Attendance/internal/pkg/database"
)

type salaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) salary.StructureRepository {
	return &salaryStructureRepository{db: db}
}

const structureColumns = `id, employee_id, basic_salary,
	hra, conveyance_allowance, medical_allowance, special_allowance,
	washing_allowance, education_allowance, other_allowance,
	bonus, incentive,
	professional_tax, tds, welfare_deduction,
	is_pf_applicable, is_esi_applicable,
	is_hourly_based, hourly_rate, contract_rate_per_day,
	ot_rate_multiplier, ot_weekend_multiplier, ot_holiday_multiplier,
	created_at, updated_at`

func scanStructure(row pgx.Row) (salary.Structure, error) {
	var s salary.Structure
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.BasicSalary,
		&s.HRA, &s.ConveyanceAllowance, &s.MedicalAllowance, &s.SpecialAllowance,
		&s.WashingAllowance, &s.EducationAllowance, &s.OtherAllowance,
		&s.Bonus, &s.Incentive,
		&s.ProfessionalTax, &s.TDS, &s.WelfareDeduction,
		&s.IsPFApplicable, &s.IsESIApplicable,
		&s.IsHourlyBased, &s.HourlyRate, &s.ContractRatePerDay,
		&s.OTRateMultiplier, &s.OTWeekendMultiplier, &s.OTHolidayMultiplier,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *salaryStructureRepository) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Structure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + structureColumns + ` FROM salary_structures WHERE employee_id = $1`

	s, err := scanStructure(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Structure{}, salary.ErrStructureNotFound
		}
		return salary.Structure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}
	return s, nil
}

func (r *salaryStructureRepository) Upsert(ctx context.Context, structure salary.Structure) (salary.Structure, error) {
	q := GetQuerier(ctx, r.db)

	if structure.ID == "" {
		structure.ID = uuid.New().String()
	}

	query := `
		INSERT INTO salary_structures (
			id, employee_id, basic_salary,
			hra, conveyance_allowance, medical_allowance, special_allowance,
			washing_allowance, education_allowance, other_allowance,
			bonus, incentive,
			professional_tax, tds, welfare_deduction,
			is_pf_applicable, is_esi_applicable,
			is_hourly_based, hourly_rate, contract_rate_per_day,
			ot_rate_multiplier, ot_weekend_multiplier, ot_holiday_multiplier,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23,
			NOW(), NOW()
		)
		ON CONFLICT (employee_id) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			hra = EXCLUDED.hra,
			conveyance_allowance = EXCLUDED.conveyance_allowance,
			medical_allowance = EXCLUDED.medical_allowance,
			special_allowance = EXCLUDED.special_allowance,
			washing_allowance = EXCLUDED.washing_allowance,
			education_allowance = EXCLUDED.education_allowance,
			other_allowance = EXCLUDED.other_allowance,
			bonus = EXCLUDED.bonus,
			incentive = EXCLUDED.incentive,
			professional_tax = EXCLUDED.professional_tax,
			tds = EXCLUDED.tds,
			welfare_deduction = EXCLUDED.welfare_deduction,
			is_pf_applicable = EXCLUDED.is_pf_applicable,
			is_esi_applicable = EXCLUDED.is_esi_applicable,
			is_hourly_based = EXCLUDED.is_hourly_based,
			hourly_rate = EXCLUDED.hourly_rate,
			contract_rate_per_day = EXCLUDED.contract_rate_per_day,
			ot_rate_multiplier = EXCLUDED.ot_rate_multiplier,
			ot_weekend_multiplier = EXCLUDED.ot_weekend_multiplier,
			ot_holiday_multiplier = EXCLUDED.ot_holiday_multiplier,
			updated_at = NOW()
		RETURNING ` + structureColumns

	saved, err := scanStructure(q.QueryRow(ctx, query,
		structure.ID, structure.EmployeeID, structure.BasicSalary,
		structure.HRA, structure.ConveyanceAllowance, structure.MedicalAllowance, structure.SpecialAllowance,
		structure.WashingAllowance, structure.EducationAllowance, structure.OtherAllowance,
		structure.Bonus, structure.Incentive,
		structure.ProfessionalTax, structure.TDS, structure.WelfareDeduction,
		structure.IsPFApplicable, structure.IsESIApplicable,
		structure.IsHourlyBased, structure.HourlyRate, structure.ContractRatePerDay,
		structure.OTRateMultiplier, structure.OTWeekendMultiplier, structure.OTHolidayMultiplier,
	))
	if err != nil {
		return salary.Structure{}, fmt.Errorf("failed to upsert salary structure: %w", err)
	}
	return saved, nil
}
