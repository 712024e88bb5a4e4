package utils

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID keeps the caller's X-Request-ID or generates a new one, and echoes it back
func RequestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(RequestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// AccessLog replaces gin's default text logger with a logrus entry per request
func AccessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	entry := log.WithFields(log.Fields{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"client_ip":  c.ClientIP(),
		"request_id": c.GetString(RequestIDKey),
	})
	switch status := c.Writer.Status(); {
	case status >= 500:
		entry.Error("Request failed")
	case status >= 400:
		entry.Warn("Request rejected")
	default:
		entry.Info("Request served")
	}
}
