package request

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records per-route HTTP latency. Routes are labelled by chi pattern
// so profile IDs never become label values.
type Metrics struct {
	latency *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		latency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "matchmaker_http_request_duration_seconds",
			Help:    "Latency of HTTP requests by method and route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) observe(method, route string, seconds float64) {
	m.latency.WithLabelValues(method, route).Observe(seconds)
}
