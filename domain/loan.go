package domain

import "math"

// DTIUndefined is the sentinel reported when the debt-to-income ratio is
// mathematically undefined (zero income). It compares greater than any real
// ratio, so every threshold check downstream classifies it as a hard fail.
const DTIUndefined = math.MaxFloat64

// FactorStatus classifies the outcome of a single scoring rule.
type FactorStatus string

const (
	FactorPass    FactorStatus = "pass"
	FactorWarning FactorStatus = "warning"
	FactorFail    FactorStatus = "fail"
)

// Factor is the outcome of one eligibility rule. Only Status carries
// contractual meaning; Detail is a human-readable explanation.
type Factor struct {
	Name   string       `json:"name"`
	Status FactorStatus `json:"status"`
	Detail string       `json:"detail"`
}

// LoanParameters is the full borrower and loan input for an eligibility
// evaluation. It is treated as immutable for the duration of a call.
type LoanParameters struct {
	LoanAmount      float64 `json:"loan_amount"`
	InterestRate    float64 `json:"interest_rate"`
	LoanTermMonths  int     `json:"loan_term_months"`
	AnnualIncome    float64 `json:"annual_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	CreditScore     int     `json:"credit_score"`
	EmploymentYears float64 `json:"employment_years"`
	ExistingDebt    float64 `json:"existing_debt"`
}

// EligibilityResult is a pure function of LoanParameters: identical inputs
// always produce an identical result. DTI is reported as computed, except
// for the zero-income case where it carries DTIUndefined.
type EligibilityResult struct {
	Eligible       bool     `json:"eligible"`
	Score          int      `json:"score"`
	MaxLoanAmount  float64  `json:"max_loan_amount"`
	MonthlyPayment float64  `json:"monthly_payment"`
	TotalPayment   float64  `json:"total_payment"`
	TotalInterest  float64  `json:"total_interest"`
	DTI            float64  `json:"dti"`
	Factors        []Factor `json:"factors"`
}

// LoanInput holds the parameters for a plain amortization calculation.
type LoanInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	TermMonths   int     `json:"term_months"`
}

// LoanResult holds the outcome of a plain amortization calculation.
type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}
