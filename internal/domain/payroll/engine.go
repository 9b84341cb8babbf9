package payroll

import (
	"context"
	"time"

	"payrolld/internal/domain/attendance"
	"payrolld/internal/domain/employee"
)

// StoreAPI is the read-only data access the engine depends on. FindEmployeeByID
// returns (nil, nil) when no employee matches; collaborator errors propagate
// to the engine's caller unchanged.
type StoreAPI interface {
	FindEmployeeByID(ctx context.Context, employeeID int) (*employee.Employee, error)
	FindAttendanceByEmployeeAndPeriod(ctx context.Context, employeeID int, start, end time.Time) ([]*attendance.Record, error)
}

// Engine computes payroll results. It holds no mutable state, so concurrent
// calls are safe as long as the store is safe for concurrent reads. It never
// persists anything; that is the caller's responsibility.
type Engine struct {
	store StoreAPI
	now   func() time.Time
}

func NewEngine(store StoreAPI) *Engine {
	return &Engine{store: store, now: time.Now}
}

// CalculatePayroll validates its inputs in a fixed order, each failure
// distinguishable with errors.Is, then derives the result for the period.
func (e *Engine) CalculatePayroll(ctx context.Context, employeeID int, periodStart, periodEnd time.Time) (*Result, error) {
	if employeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}
	if periodStart.IsZero() || periodEnd.IsZero() {
		return nil, ErrInvalidPeriod
	}
	if periodStart.After(periodEnd) {
		return nil, ErrInvalidPeriod
	}
	if dateOnly(periodEnd).After(dateOnly(e.now())) {
		return nil, ErrInvalidPeriod
	}

	emp, err := e.store.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrEmployeeNotFound
	}

	records, err := e.store.FindAttendanceByEmployeeAndPeriod(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	summary := Aggregate(records, periodStart, periodEnd)

	dailyRate := DailyRate(emp.BasicSalary())
	hourlyRate := HourlyRate(emp.BasicSalary())
	basePay := dailyRate * float64(summary.DaysWorked)
	overtimePay := OvertimePay(summary.OvertimeHours, hourlyRate)
	grossPay := basePay + overtimePay + emp.TotalAllowances()
	totalDeductions := StatutoryDeductions(emp.BasicSalary())
	netPay := grossPay - totalDeductions

	result := NewResult()
	if err := result.SetEmployeeID(employeeID); err != nil {
		return nil, err
	}
	result.SetPeriod(periodStart, periodEnd)
	if err := result.SetMonthlyRate(emp.BasicSalary()); err != nil {
		return nil, err
	}
	if err := result.SetDaysWorked(summary.DaysWorked); err != nil {
		return nil, err
	}
	if err := result.SetOvertimeHours(summary.OvertimeHours); err != nil {
		return nil, err
	}
	result.SetGrossPay(grossPay)
	result.SetTotalDeductions(totalDeductions)
	result.SetNetPay(netPay)
	return result, nil
}
