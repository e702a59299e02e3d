// internal/interfaces/http/middleware/logger.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger returns a gin.HandlerFunc that logs HTTP requests
func Logger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"request_id":    c.GetString("request_id"),
			"method":        c.Request.Method,
			"path":          path,
			"status_code":   c.Writer.Status(),
			"latency":       time.Since(start).String(),
			"client_ip":     c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
			"response_size": c.Writer.Size(),
		}
		if sessionID, ok := GetSessionIDFromContext(c); ok {
			fields["session_id"] = sessionID
		}

		entry := logger.WithFields(fields)

		if len(c.Errors) > 0 {
			entry = entry.WithField("error", c.Errors.String())
		}

		status := c.Writer.Status()
		if status >= 500 {
			entry.Error("HTTP request completed with server error")
		} else if status >= 400 {
			entry.Warn("HTTP request completed with client error")
		} else {
			entry.Info("HTTP request completed successfully")
		}
	}
}
