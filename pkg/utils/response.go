package utils

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint replies with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessListResponse mirrors SuccessResponse with an element count for list endpoints.
func SuccessListResponse(c *gin.Context, status int, message string, count int, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Count:   &count,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

func ValidationErrorResponse(c *gin.Context, status int, violations []string) {
	c.JSON(status, Response{
		Success: false,
		Message: "Validation failed",
		Errors:  violations,
	})
}
