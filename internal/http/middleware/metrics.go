// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file exposes Prometheus instrumentation for HTTP traffic. Labels are
// kept low-cardinality: method, registered route path (falling back to the
// raw URL path on 404), and numeric status code.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// kbHTTPReqs counts requests by method, route path, and status code.
	kbHTTPReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kb_http_requests_total",
			Help: "Total number of HTTP requests handled by the knowledge base API.",
		},
		[]string{"method", "path", "status"},
	)

	// kbHTTPLat records request duration in seconds by method and route path.
	// Status is omitted to keep histogram cardinality low.
	kbHTTPLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kb_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// kbHTTPInflight gauges the number of requests currently being processed.
	kbHTTPInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kb_http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	// kbHTTPRespSize captures response sizes in bytes, tuned for JSON payloads.
	kbHTTPRespSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "kb_http_response_size_bytes",
			Help: "Size of HTTP responses in bytes.",
			Buckets: []float64{
				200, 500, 1 << 10, 2 << 10, 5 << 10,
				10 << 10, 25 << 10, 50 << 10,
				100 << 10, 250 << 10, 500 << 10,
				1 << 20, 2 << 20, 5 << 20,
			},
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(kbHTTPReqs, kbHTTPLat, kbHTTPInflight, kbHTTPRespSize)
}

// Metrics returns a Gin middleware that instruments requests with Prometheus.
//
// Usage:
//
//	r := gin.New()
//	r.Use(middleware.Metrics())
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		kbHTTPInflight.Inc()
		defer kbHTTPInflight.Dec()

		c.Next()

		dur := time.Since(start).Seconds()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		kbHTTPReqs.WithLabelValues(method, path, status).Inc()
		kbHTTPLat.WithLabelValues(method, path).Observe(dur)
		if size := c.Writer.Size(); size >= 0 {
			// Hijacked connections may not report a size; skip negatives.
			kbHTTPRespSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
