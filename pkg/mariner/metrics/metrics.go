// Package metrics defines the Prometheus instruments for document
// processing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the engine instruments. A nil *Metrics disables
// instrumentation throughout the processor.
type Metrics struct {
	// DocumentsProcessed counts results by classification and priority.
	DocumentsProcessed *prometheus.CounterVec
	// ProcessingDuration observes wall time per document.
	ProcessingDuration prometheus.Histogram
	// WeakSignalFallbacks counts classifications forced to routine
	// maintenance because no category scored above the threshold.
	WeakSignalFallbacks prometheus.Counter
	// DegradedSteps counts pipeline steps that completed in degraded mode,
	// labeled by step name.
	DegradedSteps *prometheus.CounterVec
	// ProcessingErrors counts documents that produced an error result.
	ProcessingErrors prometheus.Counter
}

// New registers the engine instruments on reg and returns them. A nil reg
// uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		DocumentsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mariner_documents_processed_total",
			Help: "Number of documents processed, by classification and priority.",
		}, []string{"classification", "priority"}),
		ProcessingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mariner_processing_duration_seconds",
			Help:    "Wall time spent processing a single document.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 10, 6),
		}),
		WeakSignalFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "mariner_weak_signal_fallbacks_total",
			Help: "Number of classifications that fell back to routine maintenance on weak signal.",
		}),
		DegradedSteps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mariner_degraded_steps_total",
			Help: "Number of pipeline steps completed in degraded mode, by step.",
		}, []string{"step"}),
		ProcessingErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "mariner_processing_errors_total",
			Help: "Number of documents that produced an error result.",
		}),
	}
}
