package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "etheria",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "etheria",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency distribution.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ReadingsGenerated counts full readings produced, labelled by method
	// (pythagorean or cabalistic).
	ReadingsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "etheria",
		Name:      "readings_generated_total",
		Help:      "Total number of readings generated.",
	}, []string{"method"})

	// NarrativeRequests counts narrative generation attempts by outcome
	// (generated, cached, fallback, error).
	NarrativeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "etheria",
		Name:      "narrative_requests_total",
		Help:      "Narrative generation attempts by outcome.",
	}, []string{"outcome"})

	// EphemerisRequestDuration observes ephemeris sidecar call latency.
	EphemerisRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "etheria",
		Name:      "ephemeris_request_duration_seconds",
		Help:      "Latency of calls to the ephemeris service.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})
)
