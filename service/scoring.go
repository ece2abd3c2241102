package service

import (
	"fmt"

	"loan-engine/domain"
)

const (
	factorCreditScore  = "Credit Score"
	factorDebtToIncome = "Debt-to-Income"
	factorEmployment   = "Employment History"
	factorLoanToIncome = "Loan-to-Income"
)

// scoreFactors evaluates the four underwriting rules in fixed order (credit
// score, debt-to-income, employment history, loan-to-income) and returns the
// composite 0-100 score together with one Factor per rule.
func scoreFactors(params domain.LoanParameters, dti float64) (int, []domain.Factor) {
	credit, creditPoints := creditScoreFactor(params.CreditScore)
	debtToIncome, dtiPoints := dtiFactor(dti)
	employment, employmentPoints := employmentFactor(params.EmploymentYears)
	leverage, leveragePoints := loanToIncomeFactor(params.LoanAmount, params.AnnualIncome)

	score := creditPoints + dtiPoints + employmentPoints + leveragePoints
	return score, []domain.Factor{credit, debtToIncome, employment, leverage}
}

// creditScoreFactor has two pass tiers: excellent earns the full weight,
// good earns a reduced one, both reported as pass.
func creditScoreFactor(score int) (domain.Factor, int) {
	f := domain.Factor{Name: factorCreditScore}
	var points int

	switch {
	case score >= creditScoreExcellent:
		f.Status = domain.FactorPass
		f.Detail = fmt.Sprintf("credit score %d is in the excellent tier (%d+)", score, creditScoreExcellent)
		points = weightFull
	case score >= creditScoreGood:
		f.Status = domain.FactorPass
		f.Detail = fmt.Sprintf("credit score %d is in the good tier (%d-%d)", score, creditScoreGood, creditScoreExcellent-1)
		points = creditWeightGood
	case score >= creditScoreFair:
		f.Status = domain.FactorWarning
		f.Detail = fmt.Sprintf("credit score %d is in the fair tier (%d-%d)", score, creditScoreFair, creditScoreGood-1)
		points = creditWeightWarning
	default:
		f.Status = domain.FactorFail
		f.Detail = fmt.Sprintf("credit score %d is below the %d minimum", score, creditScoreFair)
	}
	return f, points
}

// dtiFactor fails on any ratio above the ceiling, the undefined sentinel
// included.
func dtiFactor(dti float64) (domain.Factor, int) {
	f := domain.Factor{Name: factorDebtToIncome}
	var points int

	switch {
	case dti == domain.DTIUndefined:
		f.Status = domain.FactorFail
		f.Detail = "debt-to-income ratio is undefined: no reported income"
	case dti <= TargetDTIPercent:
		f.Status = domain.FactorPass
		f.Detail = fmt.Sprintf("debt-to-income ratio %.2f%% is within the %.0f%% target", dti, TargetDTIPercent)
		points = weightFull
	case dti <= MaxDTIPercent:
		f.Status = domain.FactorWarning
		f.Detail = fmt.Sprintf("debt-to-income ratio %.2f%% is between the %.0f%% target and the %.0f%% ceiling", dti, TargetDTIPercent, MaxDTIPercent)
		points = dtiWeightWarning
	default:
		f.Status = domain.FactorFail
		f.Detail = fmt.Sprintf("debt-to-income ratio %.2f%% exceeds the %.0f%% ceiling", dti, MaxDTIPercent)
	}
	return f, points
}

func employmentFactor(years float64) (domain.Factor, int) {
	f := domain.Factor{Name: factorEmployment}
	var points int

	switch {
	case years >= minEmploymentYears:
		f.Status = domain.FactorPass
		f.Detail = fmt.Sprintf("%.1f years of employment meets the %.0f-year minimum", years, minEmploymentYears)
		points = weightFull
	case years >= warnEmploymentYears:
		f.Status = domain.FactorWarning
		f.Detail = fmt.Sprintf("%.1f years of employment is under the %.0f-year minimum", years, minEmploymentYears)
		points = employmentWeightWarning
	default:
		f.Status = domain.FactorFail
		f.Detail = fmt.Sprintf("%.1f years of employment is under the %.0f-year floor", years, warnEmploymentYears)
	}
	return f, points
}

func loanToIncomeFactor(loanAmount, annualIncome float64) (domain.Factor, int) {
	f := domain.Factor{Name: factorLoanToIncome}
	if annualIncome <= 0 {
		f.Status = domain.FactorFail
		f.Detail = "loan-to-income ratio is undefined: no reported income"
		return f, 0
	}

	ratio := loanAmount / annualIncome
	var points int

	switch {
	case ratio <= targetLoanToIncome:
		f.Status = domain.FactorPass
		f.Detail = fmt.Sprintf("loan amount is %.2fx annual income, within the %.0fx target", ratio, targetLoanToIncome)
		points = weightFull
	case ratio <= maxLoanToIncome:
		f.Status = domain.FactorWarning
		f.Detail = fmt.Sprintf("loan amount is %.2fx annual income, above the %.0fx target", ratio, targetLoanToIncome)
		points = loanToIncomeWeightWarning
	default:
		f.Status = domain.FactorFail
		f.Detail = fmt.Sprintf("loan amount is %.2fx annual income, above the %.0fx limit", ratio, maxLoanToIncome)
	}
	return f, points
}
