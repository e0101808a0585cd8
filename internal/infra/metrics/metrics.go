// Package metrics exposes the prometheus collectors of the trip service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Enrichment results.
const (
	EnrichmentOK     = "ok"
	EnrichmentFailed = "failed"
	EnrichmentStale  = "stale"
)

var (
	RemoteFallbackTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tripmap_remote_fallback_total",
		Help: "Remote store operations recovered locally",
	}, []string{"op"})
	SnapshotWriteFailTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tripmap_snapshot_write_fail_total",
		Help: "Failed local snapshot writes",
	}, []string{"kind"})
	RouteEnrichmentTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tripmap_route_enrichment_total",
		Help: "Route enrichment results per pair or batch",
	}, []string{"result"})
	RouteDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tripmap_route_duration_ms",
		Help:    "Directions call duration in milliseconds",
		Buckets: []float64{5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000},
	})
	EventPublishFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tripmap_event_publish_fail_total",
		Help: "Trip change events that could not be published",
	})
)

func init() {
	prometheus.MustRegister(RemoteFallbackTotal)
	prometheus.MustRegister(SnapshotWriteFailTotal)
	prometheus.MustRegister(RouteEnrichmentTotal)
	prometheus.MustRegister(RouteDurationMs)
	prometheus.MustRegister(EventPublishFailTotal)
}

// Handler serves the registered collectors on /metrics.
func Handler() http.Handler { return promhttp.Handler() }
