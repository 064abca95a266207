package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wintararaj-cmd/Attendance/internal/domain/payroll"
)

var registerHeaders = []string{
	"Emp Code", "Employee Name", "Paid Days", "Present Days",
	"Basic Earned", "HRA", "Conveyance", "Medical", "Special", "Washing", "Education", "Other",
	"OT Hours", "OT Amount", "Bonus", "Incentive", "Gross",
	"PF", "ESI", "Prof Tax", "Welfare", "TDS", "Loan", "Total Deductions",
	"Net Salary", "CTC", "Status",
}

// ExportRegister implements payroll.PayrollService. It renders every record
// of the period, one employee per row, in a fixed column order payroll
// clerks rely on.
func (s *PayrollServiceImpl) ExportRegister(ctx context.Context, month, year int) ([]byte, string, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, "", payroll.ErrInvalidPeriod
	}

	records, err := s.recordRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list payroll records: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := fmt.Sprintf("Payroll %04d-%02d", year, month)
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, header := range registerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIdx, record := range records {
		b := record.Breakdown

		empCode := ""
		if record.EmpCode != nil {
			empCode = *record.EmpCode
		}
		name := ""
		if record.EmployeeName != nil {
			name = *record.EmployeeName
		}

		values := []interface{}{
			empCode, name,
			b.Metadata.PaidDays.InexactFloat64(), b.Metadata.WorkingDays.InexactFloat64(),
			b.Earnings.BasicEarned.InexactFloat64(), b.Earnings.HRA.InexactFloat64(),
			b.Earnings.Conveyance.InexactFloat64(), b.Earnings.Medical.InexactFloat64(),
			b.Earnings.Special.InexactFloat64(), b.Earnings.Washing.InexactFloat64(),
			b.Earnings.Education.InexactFloat64(), b.Earnings.Other.InexactFloat64(),
			b.Metadata.OTHours.InexactFloat64(), b.Earnings.OTAmount.InexactFloat64(),
			b.Earnings.Bonus.InexactFloat64(), b.Earnings.Incentive.InexactFloat64(),
			b.Earnings.Gross.InexactFloat64(),
			b.Deductions.PF.InexactFloat64(), b.Deductions.ESI.InexactFloat64(),
			b.Deductions.ProfTax.InexactFloat64(), b.Deductions.Welfare.InexactFloat64(),
			b.Deductions.TDS.InexactFloat64(), b.Deductions.Loan.InexactFloat64(),
			b.Deductions.Total.InexactFloat64(),
			b.NetSalary.InexactFloat64(), b.CTC.InexactFloat64(),
			string(record.Status),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("payroll_register_%04d%02d_%s.xlsx", year, month, time.Now().In(s.loc).Format("20060102"))
	return buf.Bytes(), filename, nil
}
