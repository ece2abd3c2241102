package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // hard input ceiling
	MaxInterestRate = 1000.0          // 1000% annual
	MaxTermMonths   = 600             // 50 years
	MinTermMonths   = 1
	MaxDebtAmount   = 100_000_000.0

	// Underwriting thresholds. DTI values are percentages.
	MaxDTIPercent    = 43.0
	TargetDTIPercent = 36.0
	MaxDTIFraction   = 0.43
	MinEligibleScore = 60

	creditScoreExcellent = 750
	creditScoreGood      = 670
	creditScoreFair      = 580

	minEmploymentYears  = 2.0
	warnEmploymentYears = 1.0

	targetLoanToIncome = 3.0
	maxLoanToIncome    = 5.0
)

// Factor weights. Each rule contributes zero, its warning weight, or its
// full weight; the four full weights sum to 100.
const (
	weightFull = 25

	creditWeightGood    = 20
	creditWeightWarning = 10

	dtiWeightWarning = 15

	employmentWeightWarning = 10

	loanToIncomeWeightWarning = 15
)
