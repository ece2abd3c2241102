// Package http provides the HTTP shell around the eligibility engine:
// routing, rate limiting, metrics and health probes.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loan-engine/service"
)

// Server wires handlers and middleware into a single http.Handler.
type Server struct {
	eligibility *EligibilityHandler
	loans       *LoanHandler
	limiter     *RateLimiter
	logger      *slog.Logger
}

func NewServer(
	eligibilityService *service.EligibilityService,
	loanService *service.LoanService,
	limiter *RateLimiter,
	logger *slog.Logger,
) *Server {
	return &Server{
		eligibility: NewEligibilityHandler(eligibilityService, logger),
		loans:       NewLoanHandler(loanService, logger),
		limiter:     limiter,
		logger:      logger,
	}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/healthz", handleLiveness)
	r.Get("/readyz", handleReadiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(s.limiter.Middleware)

		r.Post("/loan/evaluate", s.eligibility.Evaluate)
		r.Post("/loan/max-amount", s.eligibility.MaxLoanAmount)
		r.Get("/loan/evaluations", s.eligibility.RecentEvaluations)
		r.Post("/loan/calculate", s.loans.CalculateLoan)
		r.Post("/loan/schedule", s.loans.AmortizationSchedule)
	})

	return r
}
