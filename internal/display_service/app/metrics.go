package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	labelResolutionsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "display",
			Name:      "label_resolutions_total",
			Help:      "Total display-label resolutions served.",
		},
		[]string{"interaction"},
	)

	unknownInteractionCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "display",
			Name:      "unknown_interaction_total",
			Help:      "Label requests carrying an unrecognized interaction kind.",
		},
	)

	annotationsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "display",
			Name:      "annotations_total",
			Help:      "Total telephone annotation requests processed.",
		},
	)

	annotationSpansHist = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "display",
			Name:      "annotation_spans",
			Help:      "Telephone spans found per annotated message.",
			Buckets:   prometheus.LinearBuckets(0, 1, 8),
		},
	)

	overrideMutationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "display",
			Name:      "label_override_mutations_total",
			Help:      "Admin mutations applied to the label catalog.",
		},
		[]string{"action"}, // "upsert" or "delete"
	)
)
