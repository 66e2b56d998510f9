package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wedding"

// Status label values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// RPCRequests counts chain RPC calls by operation and outcome.
	RPCRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chain",
			Name:      "rpc_requests_total",
			Help:      "Total number of chain RPC requests",
		},
		[]string{"operation", "status"},
	)

	// RPCDuration times chain RPC calls by operation.
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "chain",
			Name:      "rpc_duration_seconds",
			Help:      "Chain RPC request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"operation"},
	)

	// DispatchTasks counts background tasks by outcome.
	DispatchTasks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "tasks_total",
			Help:      "Total number of background tasks by outcome",
		},
		[]string{"outcome"},
	)

	// HTTPRequests counts API requests.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration times API requests.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "path"},
	)
)

// ObserveRPC records one chain call. Use it as
// `defer metrics.ObserveRPC("balance_at", time.Now(), &err)`.
func ObserveRPC(operation string, start time.Time, err *error) {
	status := StatusOK
	if err != nil && *err != nil {
		status = StatusError
	}
	RPCRequests.WithLabelValues(operation, status).Inc()
	RPCDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
