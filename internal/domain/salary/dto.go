package salary

import (
	"github.com/shopspring/decimal"

	"github.com/wintararaj-cmd/Attendance/internal/pkg/validator"
)

// UpsertStructureRequest carries the full salary configuration for an
// employee. Absent fields keep their documented defaults; numeric fields are
// coerced to decimals once here, never inside the calculation.
type UpsertStructureRequest struct {
	EmployeeID string `json:"-"`

	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`

	HRA                 *decimal.Decimal `json:"hra,omitempty"`
	ConveyanceAllowance *decimal.Decimal `json:"conveyance_allowance,omitempty"`
	MedicalAllowance    *decimal.Decimal `json:"medical_allowance,omitempty"`
	SpecialAllowance    *decimal.Decimal `json:"special_allowance,omitempty"`
	WashingAllowance    *decimal.Decimal `json:"washing_allowance,omitempty"`
	EducationAllowance  *decimal.Decimal `json:"education_allowance,omitempty"`
	OtherAllowance      *decimal.Decimal `json:"other_allowance,omitempty"`

	Bonus     *decimal.Decimal `json:"bonus,omitempty"`
	Incentive *decimal.Decimal `json:"incentive,omitempty"`

	ProfessionalTax  *decimal.Decimal `json:"professional_tax,omitempty"`
	TDS              *decimal.Decimal `json:"tds,omitempty"`
	WelfareDeduction *decimal.Decimal `json:"welfare_deduction,omitempty"`

	IsPFApplicable  *bool `json:"is_pf_applicable,omitempty"`
	IsESIApplicable *bool `json:"is_esi_applicable,omitempty"`

	IsHourlyBased      *bool            `json:"is_hourly_based,omitempty"`
	HourlyRate         *decimal.Decimal `json:"hourly_rate,omitempty"`
	ContractRatePerDay *decimal.Decimal `json:"contract_rate_per_day,omitempty"`

	OTRateMultiplier    *decimal.Decimal `json:"ot_rate_multiplier,omitempty"`
	OTWeekendMultiplier *decimal.Decimal `json:"ot_weekend_multiplier,omitempty"`
	OTHolidayMultiplier *decimal.Decimal `json:"ot_holiday_multiplier,omitempty"`
}

func (r *UpsertStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	nonNegative := map[string]*decimal.Decimal{
		"basic_salary":          r.BasicSalary,
		"hra":                   r.HRA,
		"conveyance_allowance":  r.ConveyanceAllowance,
		"medical_allowance":     r.MedicalAllowance,
		"special_allowance":     r.SpecialAllowance,
		"washing_allowance":     r.WashingAllowance,
		"education_allowance":   r.EducationAllowance,
		"other_allowance":       r.OtherAllowance,
		"bonus":                 r.Bonus,
		"incentive":             r.Incentive,
		"professional_tax":      r.ProfessionalTax,
		"tds":                   r.TDS,
		"welfare_deduction":     r.WelfareDeduction,
		"hourly_rate":           r.HourlyRate,
		"contract_rate_per_day": r.ContractRatePerDay,
		"ot_rate_multiplier":    r.OTRateMultiplier,
		"ot_weekend_multiplier": r.OTWeekendMultiplier,
		"ot_holiday_multiplier": r.OTHolidayMultiplier,
	}
	for field, v := range nonNegative {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the request into an existing structure (or the defaults for a
// new one) and returns the result.
func (r *UpsertStructureRequest) Apply(current Structure) Structure {
	setDec := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}

	setDec(&current.BasicSalary, r.BasicSalary)
	setDec(&current.HRA, r.HRA)
	setDec(&current.ConveyanceAllowance, r.ConveyanceAllowance)
	setDec(&current.MedicalAllowance, r.MedicalAllowance)
	setDec(&current.SpecialAllowance, r.SpecialAllowance)
	setDec(&current.WashingAllowance, r.WashingAllowance)
	setDec(&current.EducationAllowance, r.EducationAllowance)
	setDec(&current.OtherAllowance, r.OtherAllowance)
	setDec(&current.Bonus, r.Bonus)
	setDec(&current.Incentive, r.Incentive)
	setDec(&current.ProfessionalTax, r.ProfessionalTax)
	setDec(&current.TDS, r.TDS)
	setDec(&current.WelfareDeduction, r.WelfareDeduction)
	setDec(&current.HourlyRate, r.HourlyRate)
	setDec(&current.ContractRatePerDay, r.ContractRatePerDay)
	setDec(&current.OTRateMultiplier, r.OTRateMultiplier)
	setDec(&current.OTWeekendMultiplier, r.OTWeekendMultiplier)
	setDec(&current.OTHolidayMultiplier, r.OTHolidayMultiplier)

	if r.IsPFApplicable != nil {
		current.IsPFApplicable = *r.IsPFApplicable
	}
	if r.IsESIApplicable != nil {
		current.IsESIApplicable = *r.IsESIApplicable
	}
	if r.IsHourlyBased != nil {
		current.IsHourlyBased = *r.IsHourlyBased
	}

	return current
}

type StructureResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`

	BasicSalary decimal.Decimal `json:"basic_salary"`

	HRA                 decimal.Decimal `json:"hra"`
	ConveyanceAllowance decimal.Decimal `json:"conveyance_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance    decimal.Decimal `json:"special_allowance"`
	WashingAllowance    decimal.Decimal `json:"washing_allowance"`
	EducationAllowance  decimal.Decimal `json:"education_allowance"`
	OtherAllowance      decimal.Decimal `json:"other_allowance"`

	Bonus     decimal.Decimal `json:"bonus"`
	Incentive decimal.Decimal `json:"incentive"`

	ProfessionalTax  decimal.Decimal `json:"professional_tax"`
	TDS              decimal.Decimal `json:"tds"`
	WelfareDeduction decimal.Decimal `json:"welfare_deduction"`

	IsPFApplicable  bool `json:"is_pf_applicable"`
	IsESIApplicable bool `json:"is_esi_applicable"`

	IsHourlyBased      bool            `json:"is_hourly_based"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	ContractRatePerDay decimal.Decimal `json:"contract_rate_per_day"`

	OTRateMultiplier    decimal.Decimal `json:"ot_rate_multiplier"`
	OTWeekendMultiplier decimal.Decimal `json:"ot_weekend_multiplier"`
	OTHolidayMultiplier decimal.Decimal `json:"ot_holiday_multiplier"`
}
