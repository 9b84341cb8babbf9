package payroll

import (
	"errors"
	"testing"

	"payrolld/internal/domain/validation"
)

func TestResultSetterValidation(t *testing.T) {
	result := NewResult()

	if err := result.SetEmployeeID(10001); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := result.SetEmployeeID(0); !errors.Is(err, validation.ErrInvalidField) {
		t.Fatalf("expected invalid field for zero id, got %v", err)
	}
	if err := result.SetMonthlyRate(-1000); !errors.Is(err, validation.ErrInvalidField) {
		t.Fatalf("expected invalid field for negative rate, got %v", err)
	}
	if err := result.SetDaysWorked(-1); !errors.Is(err, validation.ErrInvalidField) {
		t.Fatalf("expected invalid field for negative days, got %v", err)
	}
	if err := result.SetOvertimeHours(-1); !errors.Is(err, validation.ErrInvalidField) {
		t.Fatalf("expected invalid field for negative overtime, got %v", err)
	}
}

func TestResultAmounts(t *testing.T) {
	result := NewResult()
	if err := result.SetMonthlyRate(50000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := result.SetDaysWorked(22); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result.SetGrossPay(50000)
	result.SetTotalDeductions(10000)
	result.SetNetPay(40000)

	if result.GrossPay()-result.TotalDeductions() != result.NetPay() {
		t.Fatalf("net pay mismatch: %v - %v != %v",
			result.GrossPay(), result.TotalDeductions(), result.NetPay())
	}
}
