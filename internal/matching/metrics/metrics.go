// Package metrics provides Prometheus metrics for the matching engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the matching counters and histograms.
type Metrics struct {
	EvaluationsTotal       *prometheus.CounterVec // Evaluations by result (pass, fail)
	DealBreakerFailures    *prometheus.CounterVec // First failing deal-breaker by kind
	InvariantViolations    *prometheus.CounterVec // Invariant violations by operation
	FilterDivergenceTotal  prometheus.Counter     // Stored rows the evaluator rejected after the filter admitted them
	CandidateSearchSeconds prometheus.Histogram
	CandidatesReturned     prometheus.Histogram
	IdealTypesSavedTotal   prometheus.Counter

	IdealTypeCacheHits   prometheus.Counter
	IdealTypeCacheMisses prometheus.Counter
}

// New registers the metrics with reg. A nil reg leaves them unregistered,
// which tests rely on to build several instances.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EvaluationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "matchmaker_evaluations_total",
			Help: "Candidate evaluations by result",
		}, []string{"result"}),

		DealBreakerFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "matchmaker_deal_breaker_failures_total",
			Help: "Evaluations that failed, by the first violated condition kind",
		}, []string{"kind"}),

		InvariantViolations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "matchmaker_invariant_violations_total",
			Help: "Preference sets rejected as internally inconsistent, by operation",
		}, []string{"operation"}),

		FilterDivergenceTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "matchmaker_filter_divergence_total",
			Help: "Candidates returned by the compiled filter that the evaluator rejected",
		}),

		CandidateSearchSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "matchmaker_candidate_search_duration_seconds",
			Help:    "Duration of candidate searches including re-validation",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		CandidatesReturned: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "matchmaker_candidates_returned",
			Help:    "Number of eligible candidates per search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),

		IdealTypesSavedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "matchmaker_ideal_types_saved_total",
			Help: "Ideal types written",
		}),

		IdealTypeCacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "matchmaker_ideal_type_cache_hits_total",
			Help: "Ideal type cache hits",
		}),

		IdealTypeCacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "matchmaker_ideal_type_cache_misses_total",
			Help: "Ideal type cache misses",
		}),
	}
}

// ObserveEvaluation records one evaluation outcome. failedOn is empty for a pass.
func (m *Metrics) ObserveEvaluation(pass bool, failedOn string) {
	if m == nil {
		return
	}
	if pass {
		m.EvaluationsTotal.WithLabelValues("pass").Inc()
		return
	}
	m.EvaluationsTotal.WithLabelValues("fail").Inc()
	m.DealBreakerFailures.WithLabelValues(failedOn).Inc()
}

// IncInvariantViolation counts a rejected preference set.
func (m *Metrics) IncInvariantViolation(operation string) {
	if m == nil {
		return
	}
	m.InvariantViolations.WithLabelValues(operation).Inc()
}

// IncFilterDivergence counts a row the filter admitted and the evaluator rejected.
func (m *Metrics) IncFilterDivergence() {
	if m == nil {
		return
	}
	m.FilterDivergenceTotal.Inc()
}

// ObserveSearch records a finished candidate search.
func (m *Metrics) ObserveSearch(start time.Time, returned int) {
	if m == nil {
		return
	}
	m.CandidateSearchSeconds.Observe(time.Since(start).Seconds())
	m.CandidatesReturned.Observe(float64(returned))
}

// IncIdealTypeSaved counts a write.
func (m *Metrics) IncIdealTypeSaved() {
	if m == nil {
		return
	}
	m.IdealTypesSavedTotal.Inc()
}

// RecordCacheLookup counts an ideal type cache hit or miss.
func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.IdealTypeCacheHits.Inc()
	} else {
		m.IdealTypeCacheMisses.Inc()
	}
}
