package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bitcoin_exporter",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of bitcoind RPC operations.",
	}, []string{"operation", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bitcoin_exporter",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of bitcoind RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// RPCClient tracks metrics for RPC calls to bitcoind pods.
type RPCClient struct{}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient() *RPCClient {
	return &RPCClient{}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(operation, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
