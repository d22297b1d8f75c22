package middleware

import (
	"video-hive/pkg/apperror"
	"video-hive/pkg/logger"
	"video-hive/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the standard 500 error envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
				response.Error(c, apperror.Internal("Internal server error"))
			}
		}()
		c.Next()
	}
}
