// Package metrics defines and registers all custom Prometheus metrics for the
// clinic dashboard. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Login metrics ─────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts POST /login outcomes.
// Label:
//   - result: "success", "invalid_credentials", "bad_request" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsCreatedTotal counts dashboard sessions issued after a successful login.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of dashboard sessions created.",
	},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardRendersTotal counts server-rendered dashboard pages.
// Label:
//   - section: the active section of the rendered page (e.g. "overview")
var DashboardRendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_renders_total",
		Help:      "Total number of dashboard pages rendered, by active section.",
	},
	[]string{"section"},
)

// ── Audit queue metrics ───────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of login attempts waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of login attempts pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts login attempts dropped because a worker channel was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of login attempts dropped before auditing.",
	},
)

// AuditProcessingDuration measures how long a single audit write takes.
// Label:
//   - result: "ok" or "error"
var AuditProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_processing_duration_seconds",
		Help:      "Duration of login audit writes from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
