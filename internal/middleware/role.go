package middleware

import (
	"net/http"

	"go-airport-booking/internal/model"

	"github.com/gin-gonic/gin"
)

// RequireAdmin must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRole)
		if !ok || role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
