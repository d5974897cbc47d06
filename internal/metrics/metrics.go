// Package metrics contains prometheus metrics of the engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// nolint:gochecknoglobals
var (
	// EventsProcessed counts consumed engagement events by type and outcome.
	EventsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "engine_events_processed_total",
		Help: "Count of engagement events consumed from the event log",
	}, []string{"type", "outcome"})

	// CounterCorrections counts reconciliations which actually changed a counter.
	CounterCorrections = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_counter_corrections_total",
		Help: "Count of engagement counter corrections",
	})

	// PrimaryRepairs counts primary designation repairs.
	PrimaryRepairs = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_primary_repairs_total",
		Help: "Count of primary designation repairs",
	})

	// BadgeAwards counts created badge awards.
	BadgeAwards = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_badge_awards_total",
		Help: "Count of badge awards created",
	})

	// SweepDuration observes durations of periodic sweeps by sweep name.
	SweepDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "engine_sweep_duration_seconds",
		Help:    "Duration of periodic sweeps",
		Buckets: prometheus.DefBuckets,
	}, []string{"sweep"})

	// RankRequests counts ranking queries by sort.
	RankRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "engine_rank_requests_total",
		Help: "Count of ranking queries",
	}, []string{"sort"})
)

// MustRegister registers engine metrics on the given registerer.
func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		EventsProcessed,
		CounterCorrections,
		PrimaryRepairs,
		BadgeAwards,
		SweepDuration,
		RankRequests,
	)
}
