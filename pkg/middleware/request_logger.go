package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intellecta-site/pkg/logger"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// RequestLogger emits structured logs for every HTTP request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(RequestIDKey, reqID)
		c.Header("X-Request-ID", reqID)

		c.Next()

		entry := log.WithFields(map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"request_id":  reqID,
			"remote_ip":   c.ClientIP(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if len(c.Errors) > 0 {
			entry.Error(c.Errors.Last(), "request failed")
			return
		}
		entry.Info("request completed")
	}
}
