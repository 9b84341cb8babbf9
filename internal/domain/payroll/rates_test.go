package payroll

import (
	"math"
	"testing"
)

const tolerance = 0.01

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestDailyRate(t *testing.T) {
	if got := DailyRate(50000); !almostEqual(got, 2272.73) {
		t.Fatalf("expected daily rate 2272.73, got %v", got)
	}
	if got := DailyRate(0); got != 0 {
		t.Fatalf("expected daily rate 0 for zero salary, got %v", got)
	}
	if got := DailyRate(22000); !almostEqual(got, 1000) {
		t.Fatalf("expected daily rate 1000, got %v", got)
	}
}

func TestHourlyRate(t *testing.T) {
	if got := HourlyRate(50000); !almostEqual(got, 284.09) {
		t.Fatalf("expected hourly rate 284.09, got %v", got)
	}
	// hourlyRate(s) = s/176 exactly.
	if got := HourlyRate(17600); !almostEqual(got, 100) {
		t.Fatalf("expected hourly rate 100, got %v", got)
	}
}

func TestOvertimePay(t *testing.T) {
	hourly := HourlyRate(50000)
	if got := OvertimePay(5, hourly); !almostEqual(got, 1775.57) {
		t.Fatalf("expected overtime pay 1775.57, got %v", got)
	}
	if got := OvertimePay(0, hourly); got != 0 {
		t.Fatalf("expected zero overtime pay, got %v", got)
	}
	if got := OvertimePay(4, 100); !almostEqual(got, 500) {
		t.Fatalf("expected overtime pay 500, got %v", got)
	}
}
