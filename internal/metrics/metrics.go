// Package metrics exposes Prometheus collectors for HTTP traffic and
// authorization decisions.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	authzDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_decisions_total",
			Help: "Authorization decisions by action and result.",
		},
		[]string{"action", "result"},
	)

	fileDeletionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "file_deletions_total",
			Help: "Stored-file deletions by outcome.",
		},
		[]string{"result"},
	)

	registerOnce sync.Once
)

// Register adds all collectors to the default registry. Safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpInFlight,
			httpRequestsTotal,
			httpRequestDuration,
			authzDecisionsTotal,
			fileDeletionsTotal,
		)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latencies. The route label is the
// matched gin route pattern, so ids in the path do not explode cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	}
}

// ObserveAuthzDecision counts one authorization decision.
func ObserveAuthzDecision(action string, allowed bool) {
	result := "deny"
	if allowed {
		result = "allow"
	}
	authzDecisionsTotal.WithLabelValues(action, result).Inc()
}

// ObserveFileDeletion counts one stored-file deletion attempt outcome.
func ObserveFileDeletion(ok bool) {
	result := "failed"
	if ok {
		result = "deleted"
	}
	fileDeletionsTotal.WithLabelValues(result).Inc()
}
