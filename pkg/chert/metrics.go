package chert

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus metrics for client calls. A nil *Metrics is
// valid and disables recording, so the SDK stays dependency-light for callers
// that do not scrape.
type Metrics struct {
	// RPCRequests counts calls by method and outcome (success or error kind).
	RPCRequests *prometheus.CounterVec
	// RPCDuration observes call latency by method.
	RPCDuration *prometheus.HistogramVec
}

// NewMetrics initializes and registers metrics on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers metrics with a custom registry.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		RPCRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chert_client_requests_total",
			Help: "The total number of client calls by method and outcome",
		}, []string{"method", "outcome"}),
		RPCDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chert_client_request_duration_seconds",
			Help:    "Client call latency by method",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

func (m *Metrics) observe(method, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(method, outcome).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// outcomeLabel maps an error to a stable metric label.
func outcomeLabel(err error) string {
	if err == nil {
		return "success"
	}
	if ce, ok := AsError(err); ok {
		return ce.Kind.String()
	}
	return "unknown"
}
