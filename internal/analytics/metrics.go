package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// queueDepth is only updated in the worker goroutine, guaranteeing a single
// writer and eliminating race/skew concerns.
var (
	eventsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agegate",
			Subsystem: "analytics",
			Name:      "events_submitted_total",
			Help:      "Events accepted into the dispatch queue.",
		},
	)

	eventsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agegate",
			Subsystem: "analytics",
			Name:      "events_dropped_total",
			Help:      "Events dropped because the queue was full or stopped.",
		},
	)

	eventsSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agegate",
			Subsystem: "analytics",
			Name:      "events_sent_total",
			Help:      "Events delivered to the helper service.",
		},
	)

	eventsFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agegate",
			Subsystem: "analytics",
			Name:      "events_failed_total",
			Help:      "Events abandoned after exhausting retries.",
		},
	)

	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "agegate",
			Subsystem: "analytics",
			Name:      "queue_depth",
			Help:      "Current depth of the dispatch queue.",
		},
	)
)
