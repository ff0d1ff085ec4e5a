package agegate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/privsafe/agegate-go/internal/types"
)

var (
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agegate_client",
			Name:      "evaluations_total",
			Help:      "Gate evaluations by operation and resulting status.",
		},
		[]string{"operation", "status"},
	)

	evaluationsInconclusiveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agegate_client",
			Name:      "evaluations_inconclusive_total",
			Help:      "Gate evaluations that produced no event.",
		},
		[]string{"operation"},
	)
)

func recordEvaluation(operation string, status types.AgeGateStatus) {
	evaluationsTotal.WithLabelValues(operation, string(status)).Inc()
}

func recordOptionalEvaluation(operation string, event *types.AgeGateEvent) {
	if event == nil {
		evaluationsInconclusiveTotal.WithLabelValues(operation).Inc()
		return
	}
	recordEvaluation(operation, event.Status)
}
