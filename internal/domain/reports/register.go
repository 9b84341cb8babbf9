package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"payrolld/internal/domain/payroll"
)

var registerHeaders = []string{
	"Employee ID", "Monthly Rate", "Days Worked", "Overtime Hours",
	"Gross Pay", "Total Deductions", "Net Pay",
}

// PayrollRegisterXLSX renders one row per payroll result plus a totals row.
func PayrollRegisterXLSX(results []*payroll.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payroll Register"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, name := range registerHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}
	lastCol, err := excelize.CoordinatesToCellName(len(registerHeaders), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return nil, err
	}

	var totalGross, totalDeductions, totalNet float64
	for i, result := range results {
		row := i + 2
		values := []any{
			result.EmployeeID(),
			result.MonthlyRate(),
			result.DaysWorked(),
			result.OvertimeHours(),
			result.GrossPay(),
			result.TotalDeductions(),
			result.NetPay(),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
		totalGross += result.GrossPay()
		totalDeductions += result.TotalDeductions()
		totalNet += result.NetPay()
	}

	totalsRow := len(results) + 2
	totals := map[string]any{
		fmt.Sprintf("A%d", totalsRow): "Totals",
		fmt.Sprintf("E%d", totalsRow): totalGross,
		fmt.Sprintf("F%d", totalsRow): totalDeductions,
		fmt.Sprintf("G%d", totalsRow): totalNet,
	}
	for cell, value := range totals {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
