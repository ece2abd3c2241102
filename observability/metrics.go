package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EvaluationsTotal counts eligibility evaluations by outcome
// ("eligible" or "rejected").
var EvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "loan_engine_evaluations_total",
	Help: "Eligibility evaluations by outcome.",
}, []string{"outcome"})

// CacheHits counts memoization cache hits.
var CacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "loan_engine_cache_hits_total",
	Help: "Evaluation results served from the memoization cache.",
})

// CacheMisses counts memoization cache misses.
var CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
	Name: "loan_engine_cache_misses_total",
	Help: "Evaluation cache lookups that required a fresh computation.",
})

// RequestDuration observes HTTP request latency.
var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "loan_engine_http_request_duration_seconds",
	Help:    "HTTP request duration by route, method and status.",
	Buckets: prometheus.DefBuckets,
}, []string{"route", "method", "status"})
