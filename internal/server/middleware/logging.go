package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashishshah/live-attendance/internal/logger"
)

// RequestLogger returns middleware that logs every request with method,
// path, status, and latency. The healthcheck endpoint is silently skipped.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	reqLog := log.WithComponent("http")
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthcheck" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := logger.Fields(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client", c.ClientIP(),
		)
		if id, ok := c.Get("request_id"); ok {
			fields[logger.FieldRequestID] = id
		}

		switch {
		case status >= 500:
			reqLog.Error("request completed", fields)
		case status >= 400:
			reqLog.Warn("request completed", fields)
		default:
			reqLog.Debug("request completed", fields)
		}
	}
}
