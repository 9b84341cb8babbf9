package payroll

import (
	"time"

	"payrolld/internal/domain/validation"
)

// Result is the computed payroll for one employee and period. The engine is
// the only producer; it guarantees net = gross - deductions. The amount
// fields are plain values, the identity and time fields are setter-validated.
type Result struct {
	employeeID      int
	periodStart     time.Time
	periodEnd       time.Time
	monthlyRate     float64
	daysWorked      int
	overtimeHours   float64
	grossPay        float64
	totalDeductions float64
	netPay          float64
}

func NewResult() *Result {
	return &Result{}
}

func (r *Result) SetEmployeeID(id int) error {
	if err := validation.RequirePositiveInt("employee id", id); err != nil {
		return err
	}
	r.employeeID = id
	return nil
}

func (r *Result) SetPeriod(start, end time.Time) {
	r.periodStart = start
	r.periodEnd = end
}

func (r *Result) SetMonthlyRate(rate float64) error {
	if err := validation.RequireNonNegative("monthly rate", rate); err != nil {
		return err
	}
	r.monthlyRate = rate
	return nil
}

func (r *Result) SetDaysWorked(days int) error {
	if days < 0 {
		return validation.Fieldf("days worked must not be negative, got %d", days)
	}
	r.daysWorked = days
	return nil
}

func (r *Result) SetOvertimeHours(hours float64) error {
	if err := validation.RequireNonNegative("overtime hours", hours); err != nil {
		return err
	}
	r.overtimeHours = hours
	return nil
}

func (r *Result) SetGrossPay(amount float64)        { r.grossPay = amount }
func (r *Result) SetTotalDeductions(amount float64) { r.totalDeductions = amount }
func (r *Result) SetNetPay(amount float64)          { r.netPay = amount }

func (r *Result) EmployeeID() int          { return r.employeeID }
func (r *Result) PeriodStart() time.Time   { return r.periodStart }
func (r *Result) PeriodEnd() time.Time     { return r.periodEnd }
func (r *Result) MonthlyRate() float64     { return r.monthlyRate }
func (r *Result) DaysWorked() int          { return r.daysWorked }
func (r *Result) OvertimeHours() float64   { return r.overtimeHours }
func (r *Result) GrossPay() float64        { return r.grossPay }
func (r *Result) TotalDeductions() float64 { return r.totalDeductions }
func (r *Result) NetPay() float64          { return r.netPay }
