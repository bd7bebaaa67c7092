package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fintrack/src/app/http/response"
	"fintrack/src/app/middleware"
	"fintrack/src/core/domain"
)

// respondError attaches err to the context and writes the matching response.
// Database connection errors are left for middleware.DatabaseErrors.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	if domain.IsDatabaseConnectionError(err) {
		c.Abort()
		return
	}
	response.FromDomainError(c, err, middleware.GetRequestID(c))
}

// bindJSON decodes the body into dst, answering 400 on malformed JSON.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return false
	}
	return true
}

// pathID parses a positive integer path parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name, middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}
