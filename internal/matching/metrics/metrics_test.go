package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveEvaluation(t *testing.T) {
	m := New(nil)
	m.ObserveEvaluation(true, "")
	m.ObserveEvaluation(false, "income")
	m.ObserveEvaluation(false, "income")

	assert.Equal(t, 1.0, counterValue(t, m.EvaluationsTotal.WithLabelValues("pass")))
	assert.Equal(t, 2.0, counterValue(t, m.EvaluationsTotal.WithLabelValues("fail")))
	assert.Equal(t, 2.0, counterValue(t, m.DealBreakerFailures.WithLabelValues("income")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveEvaluation(false, "car")
		m.IncInvariantViolation("evaluate")
		m.IncFilterDivergence()
		m.ObserveSearch(time.Now(), 3)
		m.IncIdealTypeSaved()
		m.RecordCacheLookup(true)
	})
}

func TestRegistersWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.IncFilterDivergence()

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "matchmaker_filter_divergence_total")
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, c.Write(&out))
	return out.GetCounter().GetValue()
}
