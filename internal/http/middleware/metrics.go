// Package middleware holds the Gin middleware shared across the HTTP API.
//
// This file carries the Prometheus instrumentation: Metrics() measures HTTP
// traffic, ObserveGeneration records model calls. Labels stay coarse on
// purpose. The path label is the registered route pattern when one matched
// (raw URL only for 404s), and generation operations come from a small
// fixed set, so neither can blow up series cardinality.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Count of handled HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// Status is left off the latency histogram to keep its series count down.
	httpLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Requests currently being served.",
		},
	)

	// Buckets span small JSON errors up to multi-megabyte document payloads.
	httpRespSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_size_bytes",
			Help: "Response body size in bytes.",
			Buckets: []float64{
				200, 500, 1 << 10, 2 << 10, 5 << 10,
				10 << 10, 25 << 10, 50 << 10,
				100 << 10, 250 << 10, 500 << 10,
				1 << 20, 2 << 20, 5 << 20,
			},
		},
		[]string{"method", "path"},
	)

	genReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_requests_total",
			Help: "Total number of AI generation operations.",
		},
		[]string{"operation", "status"},
	)

	// Buckets stretch well past the HTTP defaults because a single drafting
	// call can run for tens of seconds against the model.
	genLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "Duration of AI generation operations in seconds.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 90, 120},
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(httpReqs, httpLat, httpInflight, httpRespSize, genReqs, genLat)
}

// ObserveGeneration records one AI generation attempt. Status is "ok" for a
// nil error and "error" otherwise. Callers must pass operation from a small
// fixed set ("research", "contract", ...) to keep label cardinality bounded.
func ObserveGeneration(operation string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	genReqs.WithLabelValues(operation, status).Inc()
	genLat.WithLabelValues(operation).Observe(d.Seconds())
}

// Metrics returns middleware that feeds the HTTP collectors above. Mount the
// scrape endpoint separately:
//
//	r.Use(middleware.Metrics())
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// Each request increments http_requests_total, observes latency and response
// size under the route pattern, and tracks the in-flight gauge across the
// handler.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		method := c.Request.Method
		path := routePath(c)
		status := strconv.Itoa(c.Writer.Status())

		httpReqs.WithLabelValues(method, path, status).Inc()
		httpLat.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		// Size is -1 for hijacked or unwritten responses; skip those.
		if size := c.Writer.Size(); size >= 0 {
			httpRespSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
