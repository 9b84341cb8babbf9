package payroll

import (
	"time"

	"payrolld/internal/domain/attendance"
)

// Summary is the reduction of one employee's attendance over a period.
type Summary struct {
	DaysWorked    int
	OvertimeHours float64
}

// Aggregate filters records to [start, end] inclusive and reduces them.
// Each qualifying record counts as one worked day whether or not both clock
// times are present. Hours beyond the standard day accrue as overtime; a
// short day never produces negative overtime. No records in range is a valid
// zero summary, not an error.
func Aggregate(records []*attendance.Record, start, end time.Time) Summary {
	var summary Summary
	for _, record := range records {
		if !inPeriod(record.Date(), start, end) {
			continue
		}
		summary.DaysWorked++
		if extra := record.WorkedHours() - StandardDailyHours; extra > 0 {
			summary.OvertimeHours += extra
		}
	}
	return summary
}

func inPeriod(date, start, end time.Time) bool {
	day := dateOnly(date)
	return !day.Before(dateOnly(start)) && !day.After(dateOnly(end))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
