package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"loan-engine/domain"
	"loan-engine/service"
)

// EligibilityHandler exposes the eligibility engine over HTTP.
type EligibilityHandler struct {
	service *service.EligibilityService
	logger  *slog.Logger
}

func NewEligibilityHandler(service *service.EligibilityService, logger *slog.Logger) *EligibilityHandler {
	return &EligibilityHandler{service: service, logger: logger}
}

// Evaluate handles POST /loan/evaluate.
func (h *EligibilityHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var params domain.LoanParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Evaluate(params)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// MaxLoanRequest carries the inputs of the max-loan solver.
type MaxLoanRequest struct {
	AnnualIncome    float64 `json:"annual_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	ExistingDebt    float64 `json:"existing_debt"`
	InterestRate    float64 `json:"interest_rate"`
	TermMonths      int     `json:"term_months"`
}

// MaxLoanResponse is the solver outcome.
type MaxLoanResponse struct {
	MaxLoanAmount float64 `json:"max_loan_amount"`
}

// MaxLoanAmount handles POST /loan/max-amount.
func (h *EligibilityHandler) MaxLoanAmount(w http.ResponseWriter, r *http.Request) {
	var req MaxLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	amount, err := h.service.MaxEligibleLoan(
		req.AnnualIncome, req.MonthlyExpenses, req.ExistingDebt,
		req.InterestRate, req.TermMonths,
	)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, MaxLoanResponse{MaxLoanAmount: amount})
}

// RecentEvaluations handles GET /loan/evaluations?limit=N.
func (h *EligibilityHandler) RecentEvaluations(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	writeJSON(w, http.StatusOK, h.service.RecentEvaluations(limit))
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if errors.Is(err, domain.ErrInvalidParameter) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.Error("evaluation failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
