package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/invoice-dashboard/pkg/response"
)

// AccessLog writes one logrus entry per request. Query strings are not logged.
func AccessLog(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": c.GetString(response.RequestIDKey),
			"method":     c.Request.Method,
			"path":       normalizePath(c),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         ipFromCtx(c),
			"user_id":    c.GetString(CtxUserIDKey),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request")
		case c.Writer.Status() >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
