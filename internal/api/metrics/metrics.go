// Package metrics defines and registers all custom Prometheus metrics for
// the garage API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// importing this package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "garage"

// ── Vehicle metrics ───────────────────────────────────────────────────────────

// VehiclesCreatedTotal counts vehicles added to the registry.
// Label:
//   - brand: the brand submitted at creation
var VehiclesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vehicles_created_total",
		Help:      "Total number of vehicles registered, by brand.",
	},
	[]string{"brand"},
)

// VehiclesDeletedTotal counts vehicles removed from the registry.
var VehiclesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vehicles_deleted_total",
		Help:      "Total number of vehicles removed from the registry.",
	},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts by outcome.
// Label:
//   - result: "created", "conflict", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "not_found", "bad_password", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Hash pool metrics ─────────────────────────────────────────────────────────

// HashQueueDepth tracks the current number of jobs waiting in each hash
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var HashQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hash_queue_depth",
		Help:      "Current number of jobs pending in each hash pool worker channel.",
	},
	[]string{"worker_id"},
)

// HashDuration measures how long a single bcrypt operation takes.
// Label:
//   - op: "hash" or "compare"
var HashDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "hash_duration_seconds",
		Help:      "Duration of bcrypt hash and compare operations.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"op"},
)
