// Package metrics exposes Prometheus collectors for the POINT server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "point"

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	rpcRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total number of RPC requests handled.",
		},
		[]string{"procedure", "code"},
	)

	rpcDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "Duration of RPC requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"procedure"},
	)

	ledgerTransfers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "transfers_total",
			Help:      "Ledger transfers by purpose kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	ledgerDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "transfer_duration_seconds",
			Help:      "Time from build to confirmation of a transfer.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)

	settlementsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "completed_total",
			Help:      "Settlements whose bound chat transitioned to completed.",
		},
	)

	realtimeSubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "realtime",
			Name:      "subscribers",
			Help:      "Current number of live change subscriptions.",
		},
	)

	rateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		},
		[]string{"procedure"},
	)
)

func init() {
	Registry.MustRegister(
		rpcRequests,
		rpcDuration,
		ledgerTransfers,
		ledgerDuration,
		settlementsCompleted,
		realtimeSubscribers,
		rateLimited,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordRPC records one handled RPC.
func RecordRPC(procedure, code string, d time.Duration) {
	rpcRequests.WithLabelValues(procedure, code).Inc()
	rpcDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// RecordRateLimited counts a rejected request.
func RecordRateLimited(procedure string) {
	rateLimited.WithLabelValues(procedure).Inc()
}

// RecordTransfer records a ledger transfer attempt. kind is the purpose
// prefix (share, request, send, buy) and outcome one of confirmed, failed, timeout.
func RecordTransfer(kind, outcome string, d time.Duration) {
	if kind == "" {
		kind = "unknown"
	}
	ledgerTransfers.WithLabelValues(kind, outcome).Inc()
	if d > 0 {
		ledgerDuration.Observe(d.Seconds())
	}
}

// SettlementCompleted counts a chat completion.
func SettlementCompleted() {
	settlementsCompleted.Inc()
}

// SubscriberAdded and SubscriberRemoved track live subscriptions.
func SubscriberAdded()   { realtimeSubscribers.Inc() }
func SubscriberRemoved() { realtimeSubscribers.Dec() }
