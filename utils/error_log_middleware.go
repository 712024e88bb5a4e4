package utils

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type errorLogWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.WithFields(log.Fields{
			"status":     status,
			"path":       w.gc.Request.URL.Path,
			"request_id": w.gc.GetString(RequestIDKey),
		}).Debugf("Error response: %s", string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware logs bodies of 4xx/5xx responses, it must be installed after any GZIP middleware
func ErrorLogMiddleware(c *gin.Context) {
	blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer}
	c.Writer = blw
	c.Next()
}
