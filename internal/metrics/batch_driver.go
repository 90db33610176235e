package metrics

import (
	"github.com/goodnatureofminers/nonceaudit/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchCheckedAddresses = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "batch_driver",
		Name:      "checked_addresses",
		Help:      "Cumulative addresses checked, as stored in the checkpoint.",
	})

	batchVulnerableAddresses = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "batch_driver",
		Name:      "vulnerable_addresses",
		Help:      "Cumulative addresses with R-value reuse, as stored in the checkpoint.",
	})

	batchCheckpointSavesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "batch_driver",
		Name:      "checkpoint_saves_total",
		Help:      "Count of checkpoint writes by status.",
	}, []string{"status"})
)

// BatchDriver tracks progress of a batch run.
type BatchDriver struct{}

// NewBatchDriver constructs a BatchDriver collector.
func NewBatchDriver() *BatchDriver {
	return &BatchDriver{}
}

// ObserveCheckpoint records a checkpoint write and publishes its counters.
func (BatchDriver) ObserveCheckpoint(cp model.Checkpoint, err error) {
	batchCheckpointSavesTotal.WithLabelValues(statusOf(err)).Inc()
	if err != nil {
		return
	}
	batchCheckedAddresses.Set(float64(cp.Checked))
	batchVulnerableAddresses.Set(float64(cp.Found))
}
