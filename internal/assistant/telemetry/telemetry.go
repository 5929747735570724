// Package telemetry exposes Prometheus metrics for the assistant's routing
// and prompt-composition pipeline.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketpulse"

var (
	// RouteDecisions counts routing verdicts by chosen agent and request mode.
	RouteDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "router",
		Name:      "decisions_total",
		Help:      "Routing decisions by selected agent and request mode.",
	}, []string{"agent", "mode"})

	// RouteFallbacks counts queries that fell through to the default agent.
	RouteFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "router",
		Name:      "fallbacks_total",
		Help:      "Queries that matched no specialist above the confidence floor.",
	})

	// RouteConfidence observes the confidence attached to each decision.
	RouteConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "router",
		Name:      "confidence",
		Help:      "Confidence score of routing decisions.",
		Buckets:   []float64{0.1, 0.2, 0.3, 0.5, 0.7, 0.9, 1.0},
	})

	// PromptBytes observes the size of composed instruction prompts.
	PromptBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "composer",
		Name:      "prompt_bytes",
		Help:      "Size in bytes of composed instruction prompts.",
		Buckets:   prometheus.ExponentialBuckets(256, 2, 10),
	})

	// ComposeDuration observes end-to-end route-and-compose latency.
	ComposeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "composer",
		Name:      "duration_seconds",
		Help:      "Wall time of a full route-and-compose pass.",
		Buckets:   prometheus.DefBuckets,
	})
)
