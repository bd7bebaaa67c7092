// Package response defines the HTTP response shapes used by the API.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/src/core/domain"
)

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// DatabaseError is the body returned when Postgres cannot be reached.
// Clients match on the exact shape, so it does not use the Error envelope.
type DatabaseError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Message is a plain acknowledgement body.
type Message struct {
	Message string `json:"message"`
}

func errorBody(code, message, field, requestID string) Error {
	return Error{Error: ErrorDetail{Code: code, Message: message, Field: field, RequestID: requestID}}
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusBadRequest, errorBody("BAD_REQUEST", message, "", requestID))
}

// ValidationError sends a 400 response for a value that could not be interpreted.
func ValidationError(c *gin.Context, field, message, requestID string) {
	c.JSON(http.StatusBadRequest, errorBody("VALIDATION_ERROR", message, field, requestID))
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusNotFound, errorBody("NOT_FOUND", message, "", requestID))
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusConflict, errorBody("CONFLICT", message, "", requestID))
}

// InternalError sends a 500 response without exposing the cause.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, errorBody("INTERNAL_ERROR", "An unexpected error occurred", "", requestID))
}

// DatabaseConnectionFailed sends the 500 response for an unreachable database.
func DatabaseConnectionFailed(c *gin.Context, err *domain.DatabaseConnectionError) {
	c.JSON(http.StatusInternalServerError, DatabaseError{
		Error:   "Database connection failed",
		Message: err.Error(),
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// Database connection errors are rendered by middleware.DatabaseErrors and
// must not reach this function.
func FromDomainError(c *gin.Context, err error, requestID string) {
	switch {
	case domain.IsNotFound(err):
		NotFound(c, err.Error(), requestID)
	case domain.IsValidationError(err):
		if domainErr, ok := err.(*domain.DomainError); ok {
			ValidationError(c, domainErr.Field, domainErr.Message, requestID)
		} else {
			BadRequest(c, err.Error(), requestID)
		}
	case domain.IsConflict(err):
		Conflict(c, err.Error(), requestID)
	default:
		InternalError(c, requestID)
	}
}
