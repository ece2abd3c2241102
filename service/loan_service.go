package service

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"loan-engine/domain"
)

// LoanService performs plain amortization calculations, independent of any
// borrower profile.
type LoanService struct {
	logger *slog.Logger
}

// NewLoanService creates a new LoanService.
func NewLoanService(logger *slog.Logger) *LoanService {
	return &LoanService{logger: logger}
}

// CalculateLoan computes the monthly payment, total payment and total
// interest for the given loan.
func (s *LoanService) CalculateLoan(input domain.LoanInput) (domain.LoanResult, error) {
	if err := validateLoanInput(input); err != nil {
		return domain.LoanResult{}, err
	}

	monthlyPayment, totalPayment, totalInterest := amortize(
		input.Amount, input.InterestRate, input.TermMonths,
	)

	return domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(monthlyPayment),
		TotalPayment:   roundTo2Decimals(totalPayment),
		TotalInterest:  roundTo2Decimals(totalInterest),
	}, nil
}

// AmortizationSchedule breaks the loan down period by period. Money is
// carried as cent-rounded decimals; the final period absorbs accumulated
// rounding so the balance lands exactly on zero.
func (s *LoanService) AmortizationSchedule(input domain.LoanInput) ([]domain.AmortizationEntry, error) {
	if err := validateLoanInput(input); err != nil {
		return nil, err
	}

	paymentFloat, _, _ := amortize(input.Amount, input.InterestRate, input.TermMonths)
	payment := decimal.NewFromFloat(paymentFloat).Round(2)

	monthlyRate := decimal.NewFromFloat((input.InterestRate / 100) / 12)
	remaining := decimal.NewFromFloat(input.Amount)

	schedule := make([]domain.AmortizationEntry, 0, input.TermMonths)
	for period := 1; period <= input.TermMonths; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principal := payment.Sub(interest)

		if period == input.TermMonths {
			// Absorb rounding drift: close out the remaining balance.
			principal = remaining
			payment = principal.Add(interest)
		}

		remaining = remaining.Sub(principal)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		schedule = append(schedule, domain.AmortizationEntry{
			Period:           period,
			Payment:          payment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: remaining,
		})
	}

	return schedule, nil
}

func validateLoanInput(input domain.LoanInput) error {
	switch {
	case input.Amount <= 0:
		return fmt.Errorf("%w: loan amount must be positive", domain.ErrInvalidParameter)
	case input.Amount > MaxLoanAmount:
		return fmt.Errorf("%w: loan amount exceeds the maximum of $%.2f", domain.ErrInvalidParameter, float64(MaxLoanAmount))
	case input.InterestRate < 0:
		return fmt.Errorf("%w: interest rate must not be negative", domain.ErrInvalidParameter)
	case input.InterestRate > MaxInterestRate:
		return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", domain.ErrInvalidParameter, float64(MaxInterestRate))
	case input.TermMonths < MinTermMonths:
		return fmt.Errorf("%w: loan term must be at least %d month", domain.ErrInvalidParameter, MinTermMonths)
	case input.TermMonths > MaxTermMonths:
		return fmt.Errorf("%w: loan term exceeds the maximum of %d months", domain.ErrInvalidParameter, MaxTermMonths)
	}
	return nil
}
