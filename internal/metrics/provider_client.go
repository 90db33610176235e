// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nonceaudit"

var (
	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider_client",
		Name:      "requests_total",
		Help:      "Count of transaction provider requests.",
	}, []string{"operation", "provider", "status"})
	providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "provider_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of transaction provider requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "provider", "status"})
)

// ProviderClient tracks metrics for HTTP calls to the transaction provider.
type ProviderClient struct {
	provider string
}

// NewProviderClient constructs a metrics collector for provider calls.
func NewProviderClient(provider string) *ProviderClient {
	if provider == "" {
		provider = "unknown"
	}
	return &ProviderClient{provider: provider}
}

// Observe records a single provider call outcome and duration.
func (m ProviderClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	providerRequestsTotal.WithLabelValues(operation, m.provider, status).Inc()
	providerRequestDuration.WithLabelValues(operation, m.provider, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
