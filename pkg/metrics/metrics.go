// Package metrics provides Prometheus instrumentation for the HTTP surface.
package metrics

import (
	"net/http"
	_ "net/http/pprof" // registers pprof endpoints on the default mux

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greengivers/nursery/pkg/configs"
)

// Global metric variables.
var (
	// RequestCounter counts HTTP requests.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	// RequestDuration observes HTTP request durations.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// registry is the Prometheus registry.
	registry = prometheus.NewRegistry()
)

// InitMetrics registers the collectors.
func InitMetrics(config configs.MetricsConfig) error {
	if !config.Enabled {
		return nil
	}

	if config.RuntimeMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	registry.MustRegister(RequestCounter, RequestDuration)

	return nil
}

// StartMetricsServer mounts the /metrics endpoint (and optionally pprof) on
// the engine.
func StartMetricsServer(config configs.MetricsConfig, engine *gin.Engine) error {
	if !config.Enabled {
		return nil
	}

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if config.Pprof {
		engine.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	return nil
}

// GetRegistry returns the Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return registry
}
