// Package metrics provides the centralized Prometheus metrics registry for
// the matchpulse service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchpulse",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route and status code",
	}, []string{"route", "status"})
	RecommendationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "matchpulse",
		Name:      "recommendations_total",
		Help:      "Total number of recommendations computed",
	})
	RecommendationRejectsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "matchpulse",
		Name:      "recommendation_rejects_total",
		Help:      "Total number of recommendation requests rejected by validation",
	})
	StreamTicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "matchpulse",
		Name:      "stream_ticks_total",
		Help:      "Total number of tick messages pushed over WebSocket streams",
	})
)

// Gauge metrics
var (
	StreamConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "matchpulse",
		Name:      "stream_connections",
		Help:      "Number of currently open WebSocket stream connections",
	})
)

// Histogram metrics
var (
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "matchpulse",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds by route",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(HTTPRequestsTotal)
		registry.MustRegister(RecommendationsTotal)
		registry.MustRegister(RecommendationRejectsTotal)
		registry.MustRegister(StreamTicksTotal)

		registry.MustRegister(StreamConnections)

		registry.MustRegister(HTTPRequestDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(route, status string, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(route, status).Inc()
	HTTPRequestDuration.WithLabelValues(route).Observe(durationSeconds)
}

// RecordRecommendation records a computed recommendation.
func RecordRecommendation() {
	RecommendationsTotal.Inc()
}

// RecordRecommendationReject records a request rejected by input validation.
func RecordRecommendationReject() {
	RecommendationRejectsTotal.Inc()
}

// RecordStreamTick records a pushed tick message.
func RecordStreamTick() {
	StreamTicksTotal.Inc()
}

// StreamConnectionOpened increments the open connection gauge.
func StreamConnectionOpened() {
	StreamConnections.Inc()
}

// StreamConnectionClosed decrements the open connection gauge.
func StreamConnectionClosed() {
	StreamConnections.Dec()
}
