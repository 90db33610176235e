package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetcherCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fetcher",
		Name:      "cache_lookups_total",
		Help:      "Count of response cache lookups by result.",
	}, []string{"result"})

	fetcherRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fetcher",
		Name:      "page_retries_total",
		Help:      "Count of retried page requests.",
	})

	fetcherPagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fetcher",
		Name:      "pages_total",
		Help:      "Count of transaction pages fetched.",
	})
)

// Fetcher tracks cache and pagination metrics of the transaction fetcher.
type Fetcher struct{}

// NewFetcher constructs a Fetcher collector.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// ObserveCache records a cache lookup.
func (Fetcher) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	fetcherCacheTotal.WithLabelValues(result).Inc()
}

// ObserveRetry records a failed page request that will be retried.
func (Fetcher) ObserveRetry() {
	fetcherRetriesTotal.Inc()
}

// ObservePage records a successfully fetched page.
func (Fetcher) ObservePage() {
	fetcherPagesTotal.Inc()
}
