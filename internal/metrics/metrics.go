// Package metrics provides Prometheus instrumentation for the chat-guard
// screening service: counters for screening throughput and rejections by
// reason, and a histogram for screening latency.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MessagesScreened counts every message the screener evaluated, labeled
	// by verdict: "accepted", "rejected", or "dropped" (rate limited).
	MessagesScreened = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatguard_messages_screened_total",
		Help: "Total number of messages screened",
	}, []string{"verdict"})

	// Rejections counts rejected messages by rejection reason.
	Rejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatguard_rejections_total",
		Help: "Total number of rejected messages by reason",
	}, []string{"reason"})

	// ScreenLatency records per-message screening latency in seconds.
	ScreenLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chatguard_screen_latency_seconds",
		Help:    "Message screening latency in seconds",
		Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
	})

	// MutesApplied counts senders muted for repeated leakage attempts.
	MutesApplied = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chatguard_mutes_applied_total",
		Help: "Total number of mutes applied to repeat offenders",
	})
)

func init() {
	prometheus.MustRegister(
		MessagesScreened,
		Rejections,
		ScreenLatency,
		MutesApplied,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
