package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsFired tracks events appended to unit-of-work batches
	EventsFired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventing_events_fired_total",
			Help: "Events fired into unit-of-work batches",
		},
		[]string{"event_type"},
	)

	// EventsSuppressed tracks events dropped by supersession resolution
	EventsSuppressed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventing_events_suppressed_total",
			Help: "Events dropped because a superseding event covered them",
		},
		[]string{"event_type"},
	)

	// EventsReduced tracks events whose entity scope shrank during resolution
	EventsReduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventing_events_reduced_total",
			Help: "Events with entity scope reduced by a superseding event",
		},
		[]string{"event_type"},
	)

	// BatchesFlushed tracks completed unit-of-work flushes
	BatchesFlushed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventing_batches_flushed_total",
			Help: "Unit-of-work batches resolved and dispatched",
		},
	)

	// BatchSize tracks the number of events per flushed batch
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eventing_batch_size",
			Help:    "Events per flushed unit-of-work batch",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		},
	)

	// HandlerFailures tracks isolated handler failures during dispatch
	HandlerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventing_handler_failures_total",
			Help: "Handler invocations that returned an error",
		},
		[]string{"event_type"},
	)
)
