package monitoring

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const MetricsPath = "/metrics"

// Middleware records request metrics labelled by route template, so /posts/:post_str_id/likes
// is one series no matter how many posts exist. Unmatched routes are labelled "unmatched".
func Middleware(c *gin.Context) {
	path := c.FullPath()
	if path == MetricsPath {
		// Skip collecting metrics from metrics endpoint itself
		c.Next()
		return
	}
	if path == "" {
		path = "unmatched"
	}
	method := c.Request.Method

	// begin timer to measure the requests duration
	timer := prometheus.NewTimer(HttpRequestDuration.WithLabelValues(path, method))
	ActiveConnections.Inc()

	c.Next()

	timer.ObserveDuration()
	ActiveConnections.Dec()
	HttpRequestsTotal.WithLabelValues(path, method, strconv.Itoa(c.Writer.Status())).Inc()
}

// Handler exposes everything registered on the default Prometheus registry
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
