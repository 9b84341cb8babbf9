package payroll

import "math"

// The three statutory funds. Each takes a non-negative monthly salary;
// negative input is the caller's contract violation, enforced upstream by
// employee validation.

func SocialSecurity(monthlySalary float64) float64 {
	if monthlySalary <= SocialSecurityFloorSalary {
		return SocialSecurityFloorContribution
	}
	if monthlySalary <= SocialSecurityRateCeilingSalary {
		return math.Min(monthlySalary*SocialSecurityRate, SocialSecurityMaxContribution)
	}
	return SocialSecurityMaxContribution
}

func HealthInsurance(monthlySalary float64) float64 {
	contribution := monthlySalary * HealthInsuranceRate
	if contribution < HealthInsuranceMinContribution {
		return HealthInsuranceMinContribution
	}
	if contribution > HealthInsuranceMaxContribution {
		return HealthInsuranceMaxContribution
	}
	return contribution
}

func HousingFund(monthlySalary float64) float64 {
	if monthlySalary <= HousingFundLowSalaryCutoff {
		return monthlySalary * HousingFundLowRate
	}
	return math.Min(monthlySalary*HousingFundRate, HousingFundMaxContribution)
}

// StatutoryDeductions sums the three funds. Income-tax withholding is not
// part of the contribution schedule.
func StatutoryDeductions(monthlySalary float64) float64 {
	return SocialSecurity(monthlySalary) + HealthInsurance(monthlySalary) + HousingFund(monthlySalary)
}
