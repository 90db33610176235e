package metrics

import (
	"time"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanAddressTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "address_scanner",
		Name:      "addresses_total",
		Help:      "Count of scanned addresses by outcome.",
	}, []string{"mode", "status", "reuse"})

	scanAddressDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "address_scanner",
		Name:      "address_duration_seconds",
		Help:      "Duration of scanning a single address.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"mode", "status"})

	scanAddressTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "address_scanner",
		Name:      "address_transactions",
		Help:      "Number of transactions analyzed per address.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"mode"})

	scanSkippedTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "address_scanner",
		Name:      "skipped_transactions_total",
		Help:      "Count of malformed transactions dropped from analysis.",
	}, []string{"mode"})
)

// AddressScanner tracks metrics for per-address scans.
type AddressScanner struct {
	mode model.DetectionMode
}

// NewAddressScanner constructs an AddressScanner collector.
func NewAddressScanner(mode model.DetectionMode) *AddressScanner {
	if mode == "" {
		mode = "unknown"
	}
	return &AddressScanner{mode: mode}
}

// ObserveScan records the outcome of one address scan.
func (m AddressScanner) ObserveScan(err error, transactions int, reuseFound bool, started time.Time) {
	status := statusOf(err)
	reuse := "no"
	if reuseFound {
		reuse = "yes"
	}
	scanAddressTotal.WithLabelValues(string(m.mode), status, reuse).Inc()
	scanAddressDuration.WithLabelValues(string(m.mode), status).Observe(time.Since(started).Seconds())
	scanAddressTransactions.WithLabelValues(string(m.mode)).Observe(float64(transactions))
}

// ObserveSkippedTransaction records a transaction dropped as malformed.
func (m AddressScanner) ObserveSkippedTransaction() {
	scanSkippedTransactions.WithLabelValues(string(m.mode)).Inc()
}
