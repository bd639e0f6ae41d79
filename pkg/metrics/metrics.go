// Package metrics exposes Prometheus counters for the two external calls the
// application makes. Counters are registered on the default registry and
// served by promhttp in cmd/web. Only the HTTP handlers increment them so a
// single user action maps to at most one increment per counter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeBlank       = "blank_input"
	OutcomeUnavailable = "service_unavailable"
	OutcomeMalformed   = "malformed_response"
	OutcomeNoMatch     = "no_match"
	OutcomeError       = "error"
)

var (
	// RecommendationRequests counts calls to the recommendation service by
	// outcome, including blank-input rejections that never reach the wire.
	RecommendationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendation_requests_total",
		Help: "Recommendation service calls partitioned by outcome.",
	}, []string{"outcome"})

	// CatalogLookups counts catalog lookups by outcome. A degraded lookup
	// (transport or parse failure) is recorded as an error even though the
	// user still receives a fallback page.
	CatalogLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_lookups_total",
		Help: "Catalog lookup calls partitioned by outcome.",
	}, []string{"outcome"})
)
