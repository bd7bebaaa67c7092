package middleware

import (
	"github.com/gin-gonic/gin"

	"fintrack/src/app/http/response"
	"fintrack/src/core/domain"
)

// DatabaseErrors is the single place that renders *domain.DatabaseConnectionError.
// Handlers attach the error with c.Error and abort without writing; this
// middleware then answers 500 with {"error": "Database connection failed",
// "message": <detail>}.
func DatabaseErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for _, ginErr := range c.Errors {
			if dbErr, ok := domain.AsDatabaseConnectionError(ginErr.Err); ok {
				response.DatabaseConnectionFailed(c, dbErr)
				return
			}
		}
	}
}
