package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"listing_system/internal/domain" // Role constants
)

// AdminOnlyMiddleware allows only admin identities through. It must run
// after JWTAuthMiddleware: a request with no identity context fails closed
// as Forbidden, never as an implicit admin.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists || role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
