package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The public API mirrors what the studio front end already consumes:
// success responses are the raw entity or array, error responses are
// {"message": "..."} with an optional "details" field for validation maps.

type errorBody struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// JSON writes a success payload as-is.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, errorBody{Message: message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details interface{}) {
	c.JSON(statusCode, errorBody{Message: message, Details: details})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

func BadGateway(c *gin.Context, message string) {
	Error(c, http.StatusBadGateway, message)
}
