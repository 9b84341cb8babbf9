package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"payrolld/internal/domain/payroll"
)

func testResult(t *testing.T, employeeID int, net float64) *payroll.Result {
	t.Helper()
	result := payroll.NewResult()
	if err := result.SetEmployeeID(employeeID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result.SetPeriod(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	if err := result.SetMonthlyRate(50000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := result.SetDaysWorked(22); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result.SetGrossPay(net + 2575)
	result.SetTotalDeductions(2575)
	result.SetNetPay(net)
	return result
}

func TestPayrollRegisterXLSX(t *testing.T) {
	results := []*payroll.Result{
		testResult(t, 10001, 40000),
		testResult(t, 10002, 30000),
	}

	data, err := PayrollRegisterXLSX(results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Payroll Register")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	// Header, two results, totals.
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Employee ID" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "10001" || rows[2][0] != "10002" {
		t.Fatalf("unexpected result rows: %v %v", rows[1], rows[2])
	}
	if rows[3][0] != "Totals" {
		t.Fatalf("expected totals row, got %v", rows[3])
	}
}

func TestPayrollRegisterXLSXEmpty(t *testing.T) {
	data, err := PayrollRegisterXLSX(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected a workbook even with no results")
	}
}
