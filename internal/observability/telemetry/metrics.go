package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	VoiceCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voxretail_voice_commands_total",
		Help: "Total voice commands processed",
	}, []string{"intent", "status"})

	VoiceLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "voxretail_voice_latency_seconds",
		Help:    "Voice command processing latency",
		Buckets: prometheus.DefBuckets,
	})

	ClassifierFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voxretail_classifier_fallbacks_total",
		Help: "Times the rule classifier answered because the LLM was unavailable",
	})

	ReordersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voxretail_reorders_created_total",
		Help: "Reorder tasks filed by the assistant",
	})

	// Infrastructure metrics
	DatabaseLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "voxretail_database_latency_seconds",
		Help:    "Query latency against the retail store",
		Buckets: prometheus.DefBuckets,
	})
)
