package service

import (
	"math"

	"loan-engine/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// amortize computes the fixed monthly payment for a loan using the standard
// annuity formula, plus the total paid and total interest over the term.
// Precondition: termMonths >= 1.
func amortize(amount, annualRatePct float64, termMonths int) (monthlyPayment, totalPayment, totalInterest float64) {
	n := float64(termMonths)

	if annualRatePct == 0 {
		// Zero interest degenerates to an even split.
		monthlyPayment = amount / n
	} else {
		monthlyRate := (annualRatePct / 100) / 12
		monthlyPayment = amount * (monthlyRate / (1 - math.Pow(1+monthlyRate, -n)))
	}

	totalPayment = monthlyPayment * n
	totalInterest = totalPayment - amount
	return monthlyPayment, totalPayment, totalInterest
}

// affordability derives the borrower's monthly income and debt-to-income
// ratio (a percentage) given a prospective monthly payment. existingDebt is
// an annualized balance and contributes one twelfth per month. A zero income
// yields domain.DTIUndefined rather than a division by zero.
func affordability(monthlyPayment, annualIncome, monthlyExpenses, existingDebt float64) (monthlyIncome, dti float64) {
	monthlyIncome = annualIncome / 12
	totalMonthlyDebt := monthlyPayment + monthlyExpenses + existingDebt/12

	if monthlyIncome <= 0 {
		return monthlyIncome, domain.DTIUndefined
	}
	return monthlyIncome, totalMonthlyDebt / monthlyIncome * 100
}

// maxLoanAmount inverts the annuity formula: the largest principal whose
// monthly payment fits inside the borrower's debt headroom under the
// maxDTIFraction ceiling. Never negative; zero when there is no headroom.
func maxLoanAmount(annualIncome, monthlyExpenses, existingDebt, annualRatePct float64, termMonths int, maxDTIFraction float64) float64 {
	monthlyIncome := annualIncome / 12
	availableForDebt := monthlyIncome*maxDTIFraction - monthlyExpenses - existingDebt/12

	if availableForDebt <= 0 {
		return 0
	}

	n := float64(termMonths)
	if annualRatePct == 0 {
		return availableForDebt * n
	}

	monthlyRate := (annualRatePct / 100) / 12
	factor := math.Pow(1+monthlyRate, n)
	amount := availableForDebt * (factor - 1) / (monthlyRate * factor)
	if amount < 0 {
		return 0
	}
	return amount
}
