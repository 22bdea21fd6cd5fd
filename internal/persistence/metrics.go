package persistence

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics returns the collectors of the package for registration.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{writes, saveDuration, remoteUpdates}
}

var writes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sync_writes_total",
		Help: "How many document writes were attempted, partitioned by result.",
	},
	[]string{"result"},
)

var saveDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name: "sync_write_duration_seconds",
		Help: "The document write latencies in seconds.",
	},
)

var remoteUpdates = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sync_remote_updates_total",
		Help: "How many remote document revisions were received, partitioned by whether they were applied.",
	},
	[]string{"result"},
)
