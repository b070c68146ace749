// Package metrics defines and registers all custom Prometheus metrics for the
// school management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "school"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: "teacher" or "student"
//   - result: "ok", "invalid_credentials", "not_admin", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// ── Write metrics ─────────────────────────────────────────────────────────────

// WritesTotal counts successful write operations per logical resource.
// Label:
//   - resource: cache resource prefix the write invalidates (e.g. "attendance")
var WritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "writes_total",
		Help:      "Total number of successful write operations, by resource.",
	},
	[]string{"resource"},
)

// ── Query cache metrics ───────────────────────────────────────────────────────

// CacheHitsTotal counts reads served from the query cache.
var CacheHitsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Total number of query cache hits, by resource.",
	},
	[]string{"resource"},
)

// CacheMissesTotal counts reads that went to the repository.
var CacheMissesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Total number of query cache misses, by resource.",
	},
	[]string{"resource"},
)

// CacheInvalidationsTotal counts prefix invalidations triggered by writes.
var CacheInvalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_invalidations_total",
		Help:      "Total number of prefix invalidations, by resource.",
	},
	[]string{"resource"},
)

// ── Audit trail metrics ───────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit entries waiting in each worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit entries dropped because a worker channel was
// full. The audit trail is best effort; writes never block on it.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit entries dropped due to full worker channels.",
	},
)
