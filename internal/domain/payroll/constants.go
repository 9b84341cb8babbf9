package payroll

// Jurisdictional constants. Changing a rate or threshold is a one-place edit
// here, never an inline literal elsewhere.
const (
	WorkingDaysPerMonth = 22
	StandardDailyHours  = 8.0
	OvertimeMultiplier  = 1.25

	SocialSecurityFloorSalary       = 4000.00
	SocialSecurityFloorContribution = 180.00
	SocialSecurityRate              = 0.045
	SocialSecurityRateCeilingSalary = 25000.00
	SocialSecurityMaxContribution   = 1125.00

	HealthInsuranceRate            = 0.025
	HealthInsuranceMinContribution = 500.00
	HealthInsuranceMaxContribution = 5000.00

	HousingFundLowSalaryCutoff = 1500.00
	HousingFundLowRate         = 0.01
	HousingFundRate            = 0.02
	HousingFundMaxContribution = 200.00
)
