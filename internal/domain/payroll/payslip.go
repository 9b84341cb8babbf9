package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"payrolld/internal/domain/employee"
)

// RenderPayslipPDF lays out a single-page payslip for a computed result.
func RenderPayslipPDF(emp *employee.Employee, result *Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (#%d)", emp.FullName(), emp.ID()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s", emp.Position()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		result.PeriodStart().Format("2006-01-02"), result.PeriodEnd().Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly Rate: %.2f", result.MonthlyRate()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Days Worked: %d", result.DaysWorked()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime Hours: %.2f", result.OvertimeHours()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %.2f", emp.TotalAllowances()))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross Pay: %.2f", result.GrossPay()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f", result.TotalDeductions()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net Pay: %.2f", result.NetPay()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
