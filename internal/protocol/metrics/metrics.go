// Package metrics defines and registers all custom Prometheus metrics for the
// registry's TCP protocol surface. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the ops HTTP server exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "registry"

// ConnectionsTotal counts accepted TCP connections.
var ConnectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connections_total",
		Help:      "Total number of TCP connections accepted.",
	},
)

// ConnectionErrorsTotal counts connections that failed at the transport level.
// Label:
//   - stage: where the failure happened ("read" or "write")
var ConnectionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connection_errors_total",
		Help:      "Total number of connections dropped on a transport I/O error.",
	},
	[]string{"stage"},
)

// CommandsTotal counts dispatched commands.
// Labels:
//   - command: the protocol verb ("CREATE", "GET", ...) or "unknown"
//   - outcome: "ok" or "error"
var CommandsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Total number of protocol commands dispatched, by verb and outcome.",
	},
	[]string{"command", "outcome"},
)

// CommandDuration measures dispatch latency per command, from parsed request
// to formatted response.
var CommandDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "command_duration_seconds",
		Help:      "Duration of command dispatch, by verb.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"command"},
)
