package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/listings/listings-api/pkg/logger"
)

// RequestLogger logs one entry per request with method, path, status,
// duration and client ip. 5xx responses are logged at error level.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if query != "" {
			kv = append(kv, "query", query)
		}
		if len(c.Errors) > 0 {
			kv = append(kv, "errors", c.Errors.String())
		}
		if status >= 500 {
			logger.Errorw("HTTP request", kv...)
			return
		}
		logger.Infow("HTTP request", kv...)
	}
}
