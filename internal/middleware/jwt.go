package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"listing_system/internal/utils" // JWT utility functions
)

// TokenCookie is the cookie the token travels in.
const TokenCookie = "jwt"

// Context keys set by JWTAuthMiddleware.
const (
	CtxEmail    = "email"
	CtxUsername = "username"
	CtxRole     = "role"
)

// JWTAuthMiddleware validates the token cookie and attaches the decoded
// identity to the request context. It never touches a store: the signature
// and expiry check is the whole decision.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(TokenCookie)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(CtxEmail, claims.Subject)    // Identity key
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}
