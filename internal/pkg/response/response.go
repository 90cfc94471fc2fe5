// Package response renders the booking API envelope. Every handler answers
// either {"success":true,"data":...} or {"success":false,"error":{...}} so
// clients can switch on a single shape; error codes are the stable taxonomy
// (NO_AVAILABILITY, PRICE_UNRESOLVED, ...) the handlers map service errors to.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails adds a structured payload to the error object, e.g. the
// per-field validation map or a cancellation denial's policy context.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
