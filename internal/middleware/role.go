package middleware

import (
	"net/http"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminOnly requires an authenticated admin principal.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		if admin, ok := isAdmin.(bool); !ok || !admin {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
