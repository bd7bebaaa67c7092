package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"fintrack/src/app/http/response"
)

// Recovery turns a panic in a later handler into a generic 500 and logs the
// stack. Register it first so it wraps everything else.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			requestID := GetRequestID(c)
			log.Error("panic recovered",
				"request_id", requestID,
				"error", rec,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()),
			)
			c.Abort()
			response.InternalError(c, requestID)
		}()

		c.Next()
	}
}
