package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Poll cycle metrics
var (
	// CyclesTotal tracks completed poll cycles by outcome
	CyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "election_cycles_total",
			Help: "Poll cycles by outcome (ok, no_data, fetch_error, parse_error, publish_error)",
		},
		[]string{"status"},
	)

	// FetchDuration tracks results API fetch latency in seconds
	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "election_fetch_duration_seconds",
			Help:    "Results API fetch duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// PublishDuration tracks MQTT connect-publish-disconnect latency in seconds
	PublishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "election_publish_duration_seconds",
			Help:    "MQTT publish duration in seconds, including connect and disconnect",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	// SnapshotParties tracks the party count of the last rendered snapshot
	SnapshotParties = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "election_snapshot_parties",
			Help: "Number of parties in the last rendered snapshot",
		},
	)
)
