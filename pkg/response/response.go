package response

import "github.com/gin-gonic/gin"

// ErrorResponse is a standardized error response for API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the payload of message-only endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error writes a JSON error payload with the given status.
func Error(c *gin.Context, status int, message, details string) {
	c.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
		Details: details,
	})
}

// Message writes a JSON message payload with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
