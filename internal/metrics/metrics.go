package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CaseLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trace_case_lookups_total",
		Help: "Total number of case lookups, labelled by result (found, not_found, error).",
	}, []string{"result"})

	AllocationsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trace_allocations_computed_total",
		Help: "Total number of responsibility timelines computed.",
	})

	AttributedDays = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trace_attributed_days_total",
		Help: "Days attributed by the allocator, labelled by actor.",
	}, []string{"actor"})

	ExplanationsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trace_explanations_generated_total",
		Help: "Total number of outcome explanations generated.",
	})

	CatalogReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trace_catalog_reloads_total",
		Help: "Total number of case catalog reloads, labelled by status.",
	}, []string{"status"})

	CatalogCases = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trace_catalog_cases",
		Help: "Number of cases currently served.",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trace_http_request_duration_ms",
		Help:    "HTTP request latency in milliseconds, labelled by route pattern and status code.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
	}, []string{"route", "code"})
)
