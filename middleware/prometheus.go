package middleware

import (
	"strconv"
	"time"

	"comment-service/metrics"

	"github.com/gin-gonic/gin"
)

// PrometheusMiddleware creates a middleware for collecting Prometheus metrics
func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		c.Next()

		// Route templates keep label cardinality bounded (/export/:id, not one series per session).
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())

		metrics.HttpRequestsTotal.WithLabelValues(method, path, statusCode, serviceName).Inc()
		metrics.HttpRequestDuration.WithLabelValues(method, path, serviceName).Observe(duration)
	}
}
