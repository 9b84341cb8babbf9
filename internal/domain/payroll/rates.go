package payroll

// DailyRate converts a monthly rate using the standard working-day count.
func DailyRate(monthlyRate float64) float64 {
	return monthlyRate / WorkingDaysPerMonth
}

func HourlyRate(monthlyRate float64) float64 {
	return DailyRate(monthlyRate) / StandardDailyHours
}

// OvertimePay applies the flat premium regardless of hour count or
// time of day.
func OvertimePay(hours, hourlyRate float64) float64 {
	return hours * hourlyRate * OvertimeMultiplier
}
