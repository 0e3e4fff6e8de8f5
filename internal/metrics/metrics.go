// Package metrics exposes Prometheus instrumentation for dataset loading and
// snapshot lifecycle. The serving layer decides whether and where to mount
// the default registry handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RowsLoaded counts data rows accepted per dataset across all loads.
	RowsLoaded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retailpulse_rows_loaded_total",
		Help: "Number of data rows loaded, by dataset.",
	}, []string{"dataset"})

	// KeyCoercionFailures counts join-key cells that failed numeric parsing
	// and were replaced with the missing marker.
	KeyCoercionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retailpulse_key_coercion_failures_total",
		Help: "Number of join-key cells that could not be parsed as numbers, by dataset and column.",
	}, []string{"dataset", "column"})

	// SnapshotLoads counts completed snapshot builds, by outcome.
	SnapshotLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retailpulse_snapshot_loads_total",
		Help: "Number of snapshot load attempts, by result.",
	}, []string{"result"})

	// SnapshotLoadedAt records the unix time of the currently served snapshot.
	SnapshotLoadedAt = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "retailpulse_snapshot_loaded_timestamp_seconds",
		Help: "Unix timestamp of the most recent successful snapshot load.",
	})
)
