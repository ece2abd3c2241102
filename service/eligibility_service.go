package service

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"loan-engine/domain"
	"loan-engine/observability"
	"loan-engine/repository"
)

// EligibilityService evaluates loan eligibility. The computation itself is
// pure; the repository records evaluations for later inspection and the
// cache memoizes results keyed on the full parameter tuple. Both
// collaborators are non-critical: their failures are logged, never returned.
type EligibilityService struct {
	repo   repository.EvaluationRepository
	cache  repository.CacheRepository
	logger *slog.Logger
}

// NewEligibilityService creates an EligibilityService. cache may be nil to
// disable memoization.
func NewEligibilityService(
	repo repository.EvaluationRepository,
	cache repository.CacheRepository,
	logger *slog.Logger,
) *EligibilityService {
	return &EligibilityService{repo: repo, cache: cache, logger: logger}
}

// Evaluate runs the full pipeline: amortization, affordability, max-loan
// inversion, factor scoring, final verdict. The only error condition is a
// precondition violation; numeric degeneracy (zero income, no debt
// headroom) resolves to documented sentinels and clamps.
func (s *EligibilityService) Evaluate(params domain.LoanParameters) (domain.EligibilityResult, error) {
	if err := validateParameters(params); err != nil {
		return domain.EligibilityResult{}, err
	}

	key := cacheKey(params)
	if s.cache != nil {
		if raw, ok := s.cache.Get(key); ok {
			var cached domain.EligibilityResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				observability.CacheHits.Inc()
				return cached, nil
			}
			s.logger.Warn("discarding undecodable cache entry", "key", key)
		}
		observability.CacheMisses.Inc()
	}

	monthlyPayment, totalPayment, totalInterest := amortize(
		params.LoanAmount, params.InterestRate, params.LoanTermMonths,
	)
	_, dti := affordability(
		monthlyPayment, params.AnnualIncome, params.MonthlyExpenses, params.ExistingDebt,
	)
	maxAmount := maxLoanAmount(
		params.AnnualIncome, params.MonthlyExpenses, params.ExistingDebt,
		params.InterestRate, params.LoanTermMonths, MaxDTIFraction,
	)
	score, factors := scoreFactors(params, dti)

	result := domain.EligibilityResult{
		Eligible:       score >= MinEligibleScore && dti <= MaxDTIPercent,
		Score:          score,
		MaxLoanAmount:  roundTo2Decimals(maxAmount),
		MonthlyPayment: roundTo2Decimals(monthlyPayment),
		TotalPayment:   roundTo2Decimals(totalPayment),
		TotalInterest:  roundTo2Decimals(totalInterest),
		DTI:            dti,
		Factors:        factors,
	}
	if dti != domain.DTIUndefined {
		result.DTI = roundTo2Decimals(dti)
	}

	outcome := "rejected"
	if result.Eligible {
		outcome = "eligible"
	}
	observability.EvaluationsTotal.WithLabelValues(outcome).Inc()

	if err := s.repo.Save(params, result); err != nil {
		s.logger.Warn("failed to record evaluation", "error", err)
	}
	if s.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(raw)); err != nil {
				s.logger.Warn("failed to cache evaluation", "key", key, "error", err)
			}
		}
	}

	return result, nil
}

// MaxEligibleLoan exposes the inverse-amortization solver on its own:
// the largest principal serviceable under the DTI ceiling.
func (s *EligibilityService) MaxEligibleLoan(
	annualIncome, monthlyExpenses, existingDebt, annualRatePct float64,
	termMonths int,
) (float64, error) {
	params := domain.LoanParameters{
		LoanAmount:      1, // solver does not use the requested amount
		InterestRate:    annualRatePct,
		LoanTermMonths:  termMonths,
		AnnualIncome:    annualIncome,
		MonthlyExpenses: monthlyExpenses,
		ExistingDebt:    existingDebt,
	}
	if err := validateParameters(params); err != nil {
		return 0, err
	}

	amount := maxLoanAmount(annualIncome, monthlyExpenses, existingDebt, annualRatePct, termMonths, MaxDTIFraction)
	return roundTo2Decimals(amount), nil
}

// RecentEvaluations returns the latest recorded evaluations, newest first.
func (s *EligibilityService) RecentEvaluations(limit int) []repository.EvaluationRecord {
	return s.repo.Recent(limit)
}

func validateParameters(p domain.LoanParameters) error {
	switch {
	case p.LoanAmount <= 0:
		return fmt.Errorf("%w: loan amount must be positive", domain.ErrInvalidParameter)
	case p.LoanAmount > MaxLoanAmount:
		return fmt.Errorf("%w: loan amount exceeds the maximum of $%.2f", domain.ErrInvalidParameter, float64(MaxLoanAmount))
	case p.InterestRate < 0:
		return fmt.Errorf("%w: interest rate must not be negative", domain.ErrInvalidParameter)
	case p.InterestRate > MaxInterestRate:
		return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", domain.ErrInvalidParameter, float64(MaxInterestRate))
	case p.LoanTermMonths < MinTermMonths:
		return fmt.Errorf("%w: loan term must be at least %d month", domain.ErrInvalidParameter, MinTermMonths)
	case p.LoanTermMonths > MaxTermMonths:
		return fmt.Errorf("%w: loan term exceeds the maximum of %d months", domain.ErrInvalidParameter, MaxTermMonths)
	case p.AnnualIncome < 0:
		return fmt.Errorf("%w: annual income must not be negative", domain.ErrInvalidParameter)
	case p.MonthlyExpenses < 0:
		return fmt.Errorf("%w: monthly expenses must not be negative", domain.ErrInvalidParameter)
	case p.EmploymentYears < 0:
		return fmt.Errorf("%w: employment years must not be negative", domain.ErrInvalidParameter)
	case p.ExistingDebt < 0:
		return fmt.Errorf("%w: existing debt must not be negative", domain.ErrInvalidParameter)
	case p.ExistingDebt > MaxDebtAmount:
		return fmt.Errorf("%w: existing debt exceeds the maximum of $%.2f", domain.ErrInvalidParameter, float64(MaxDebtAmount))
	}
	return nil
}

// cacheKey serializes the full parameter tuple. %v prints the shortest
// exact float representation, so distinct inputs never collide.
func cacheKey(p domain.LoanParameters) string {
	return fmt.Sprintf("eligibility:%v:%v:%d:%v:%v:%d:%v:%v",
		p.LoanAmount, p.InterestRate, p.LoanTermMonths,
		p.AnnualIncome, p.MonthlyExpenses, p.CreditScore,
		p.EmploymentYears, p.ExistingDebt,
	)
}
