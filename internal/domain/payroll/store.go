package payroll

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"payrolld/internal/domain/attendance"
	"payrolld/internal/domain/employee"
)

// Store adapts the employee and attendance stores to StoreAPI and persists
// computed results on the caller's behalf.
type Store struct {
	DB         *pgxpool.Pool
	employees  *employee.Store
	attendance *attendance.Store
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		DB:         db,
		employees:  employee.NewStore(db),
		attendance: attendance.NewStore(db),
	}
}

func (s *Store) FindEmployeeByID(ctx context.Context, employeeID int) (*employee.Employee, error) {
	return s.employees.FindByID(ctx, employeeID)
}

func (s *Store) FindAttendanceByEmployeeAndPeriod(ctx context.Context, employeeID int, start, end time.Time) ([]*attendance.Record, error) {
	return s.attendance.FindByEmployeeAndPeriod(ctx, employeeID, start, end)
}

func (s *Store) SaveResult(ctx context.Context, result *Result) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payroll_results (employee_id, period_start, period_end, monthly_rate,
                                 days_worked, overtime_hours, gross_pay, total_deductions, net_pay)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    ON CONFLICT (employee_id, period_start, period_end)
    DO UPDATE SET monthly_rate = EXCLUDED.monthly_rate,
                  days_worked = EXCLUDED.days_worked,
                  overtime_hours = EXCLUDED.overtime_hours,
                  gross_pay = EXCLUDED.gross_pay,
                  total_deductions = EXCLUDED.total_deductions,
                  net_pay = EXCLUDED.net_pay
  `, result.EmployeeID(), result.PeriodStart(), result.PeriodEnd(), result.MonthlyRate(),
		result.DaysWorked(), result.OvertimeHours(), result.GrossPay(), result.TotalDeductions(), result.NetPay())
	return err
}

func (s *Store) ResultsForPeriod(ctx context.Context, start, end time.Time) ([]*Result, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, period_start, period_end, monthly_rate,
           days_worked, overtime_hours, gross_pay, total_deductions, net_pay
    FROM payroll_results
    WHERE period_start = $1 AND period_end = $2
    ORDER BY employee_id
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		var employeeID, daysWorked int
		var periodStart, periodEnd time.Time
		var monthlyRate, overtimeHours, gross, deductions, net float64
		if err := rows.Scan(&employeeID, &periodStart, &periodEnd, &monthlyRate,
			&daysWorked, &overtimeHours, &gross, &deductions, &net); err != nil {
			return nil, err
		}

		result := NewResult()
		if err := result.SetEmployeeID(employeeID); err != nil {
			return nil, err
		}
		result.SetPeriod(periodStart, periodEnd)
		if err := result.SetMonthlyRate(monthlyRate); err != nil {
			return nil, err
		}
		if err := result.SetDaysWorked(daysWorked); err != nil {
			return nil, err
		}
		if err := result.SetOvertimeHours(overtimeHours); err != nil {
			return nil, err
		}
		result.SetGrossPay(gross)
		result.SetTotalDeductions(deductions)
		result.SetNetPay(net)
		results = append(results, result)
	}
	return results, rows.Err()
}
