// Package metrics defines and registers all custom Prometheus metrics for the
// goal tracker API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at package load; the /metrics route is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "goaltracker"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "conflict", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts. A failed credential check and an unknown
// email share the "denied" result so the metric leaks nothing either.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result (success/denied/invalid/error).",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token checks in the access guard.
// Label:
//   - result: "ok", "missing", "invalid", or "unresolved"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of access-guard token checks, by result.",
	},
	[]string{"result"},
)

// GoalOperationsTotal counts goal CRUD calls.
// Labels:
//   - op: "create", "get", "list", "update", "delete"
//   - result: "success", "not_found", "denied", "invalid", or "error"
var GoalOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "goal_operations_total",
		Help:      "Total number of goal operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// TokenResolveDuration measures the guard's full token-to-user resolution,
// including the credential store lookup.
var TokenResolveDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "token_resolve_duration_seconds",
		Help:      "Duration of bearer-token verification and subject resolution.",
		Buckets:   prometheus.DefBuckets,
	},
)
