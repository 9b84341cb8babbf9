package payroll

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"payrolld/internal/domain/attendance"
	"payrolld/internal/domain/employee"
)

type fakeStore struct {
	employees map[int]*employee.Employee
	records   map[int][]*attendance.Record
	err       error
}

func (f *fakeStore) FindEmployeeByID(_ context.Context, employeeID int) (*employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.employees[employeeID], nil
}

func (f *fakeStore) FindAttendanceByEmployeeAndPeriod(_ context.Context, employeeID int, _, _ time.Time) ([]*attendance.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records[employeeID], nil
}

func testEmployee(t *testing.T) *employee.Employee {
	t.Helper()
	emp := employee.New()
	if err := emp.SetID(10001); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := emp.SetFirstName("John"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := emp.SetLastName("Doe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := emp.SetBasicSalary(50000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	emp.SetStatus("Regular")
	emp.SetPosition("Software Developer")
	if err := emp.SetRiceSubsidy(1500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := emp.SetPhoneAllowance(1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := emp.SetClothingAllowance(800); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return emp
}

// fullMonth builds 22 days of 8:00-18:00 attendance starting at start, so
// each day carries 2 hours of overtime.
func fullMonth(t *testing.T, start time.Time) []*attendance.Record {
	t.Helper()
	var records []*attendance.Record
	for i := 0; i < 22; i++ {
		day := start.AddDate(0, 0, i)
		records = append(records, record(t, day, clock(day, 8, 0), clock(day, 18, 0)))
	}
	return records
}

func fixedEngine(store StoreAPI, now time.Time) *Engine {
	engine := NewEngine(store)
	engine.now = func() time.Time { return now }
	return engine
}

func TestCalculatePayrollInvalidEmployeeID(t *testing.T) {
	engine := NewEngine(&fakeStore{})
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	for _, id := range []int{0, -1} {
		if _, err := engine.CalculatePayroll(context.Background(), id, start, end); !errors.Is(err, ErrInvalidEmployeeID) {
			t.Fatalf("expected ErrInvalidEmployeeID for id %d, got %v", id, err)
		}
	}

	// The id check precedes every other validation.
	if _, err := engine.CalculatePayroll(context.Background(), -1, time.Time{}, time.Time{}); !errors.Is(err, ErrInvalidEmployeeID) {
		t.Fatalf("expected ErrInvalidEmployeeID, got %v", err)
	}
}

func TestCalculatePayrollInvalidPeriod(t *testing.T) {
	engine := NewEngine(&fakeStore{})
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	if _, err := engine.CalculatePayroll(ctx, 10001, time.Time{}, end); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod for missing start, got %v", err)
	}
	if _, err := engine.CalculatePayroll(ctx, 10001, start, time.Time{}); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod for missing end, got %v", err)
	}
	if _, err := engine.CalculatePayroll(ctx, 10001, end, start); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod for inverted range, got %v", err)
	}
}

func TestCalculatePayrollFuturePeriod(t *testing.T) {
	now := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)
	engine := fixedEngine(&fakeStore{}, now)

	futureStart := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	futureEnd := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)
	if _, err := engine.CalculatePayroll(context.Background(), 10001, futureStart, futureEnd); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod for future period, got %v", err)
	}

	// A period ending today is allowed.
	store := &fakeStore{employees: map[int]*employee.Employee{10001: testEmployee(t)}}
	engine = fixedEngine(store, now)
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	endToday := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	if _, err := engine.CalculatePayroll(context.Background(), 10001, start, endToday); err != nil {
		t.Fatalf("unexpected error for period ending today: %v", err)
	}
}

func TestCalculatePayrollEmployeeNotFound(t *testing.T) {
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	engine := fixedEngine(&fakeStore{employees: map[int]*employee.Employee{}}, now)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	if _, err := engine.CalculatePayroll(context.Background(), 99999, start, end); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestCalculatePayrollStoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	engine := fixedEngine(&fakeStore{err: storeErr}, now)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	if _, err := engine.CalculatePayroll(context.Background(), 10001, start, end); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate unchanged, got %v", err)
	}
}

func TestCalculatePayrollFullMonth(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	store := &fakeStore{
		employees: map[int]*employee.Employee{10001: testEmployee(t)},
		records:   map[int][]*attendance.Record{10001: fullMonth(t, start)},
	}
	engine := fixedEngine(store, now)

	result, err := engine.CalculatePayroll(context.Background(), 10001, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.EmployeeID() != 10001 {
		t.Fatalf("expected employee id 10001, got %d", result.EmployeeID())
	}
	if result.MonthlyRate() != 50000 {
		t.Fatalf("expected monthly rate 50000, got %v", result.MonthlyRate())
	}
	if result.DaysWorked() != 22 {
		t.Fatalf("expected 22 days worked, got %d", result.DaysWorked())
	}
	if !almostEqual(result.OvertimeHours(), 44) {
		t.Fatalf("expected 44 overtime hours, got %v", result.OvertimeHours())
	}

	// base 50000, overtime 44h at 284.09*1.25, allowances 3300.
	basePay := DailyRate(50000) * 22
	overtime := OvertimePay(44, HourlyRate(50000))
	wantGross := basePay + overtime + 3300
	if !almostEqual(result.GrossPay(), wantGross) {
		t.Fatalf("expected gross %v, got %v", wantGross, result.GrossPay())
	}

	wantDeductions := 1125.00 + 1250.00 + 200.00
	if !almostEqual(result.TotalDeductions(), wantDeductions) {
		t.Fatalf("expected deductions %v, got %v", wantDeductions, result.TotalDeductions())
	}
	if !almostEqual(result.NetPay(), result.GrossPay()-result.TotalDeductions()) {
		t.Fatalf("net pay is not gross minus deductions: %+v", result)
	}
}

func TestCalculatePayrollZeroAttendance(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	store := &fakeStore{employees: map[int]*employee.Employee{10001: testEmployee(t)}}
	engine := fixedEngine(store, now)

	result, err := engine.CalculatePayroll(context.Background(), 10001, start, end)
	if err != nil {
		t.Fatalf("zero-attendance period must be valid, got %v", err)
	}
	if result.DaysWorked() != 0 || result.OvertimeHours() != 0 {
		t.Fatalf("expected zero worked time, got %+v", result)
	}
	// Gross is allowances only; deductions still apply in full.
	if !almostEqual(result.GrossPay(), 3300) {
		t.Fatalf("expected gross 3300, got %v", result.GrossPay())
	}
	if !almostEqual(result.NetPay(), 3300-2575) {
		t.Fatalf("expected net 725, got %v", result.NetPay())
	}
}

func TestCalculatePayrollIdempotent(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	store := &fakeStore{
		employees: map[int]*employee.Employee{10001: testEmployee(t)},
		records:   map[int][]*attendance.Record{10001: fullMonth(t, start)},
	}
	engine := fixedEngine(store, now)

	first, err := engine.CalculatePayroll(context.Background(), 10001, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.CalculatePayroll(context.Background(), 10001, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}
