package middlewares

import (
	"net/http"
	"strings"

	"github.com/nikharmsingh/leetcode-scraper/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	UserContextKey     = "userID"
	UsernameContextKey = "username"
)

// AuthMiddleware enforces authentication. It validates the access token from
// the cookie and sets the userID in the context.
func AuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("access_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authorization token required"})
			c.Abort()
			return
		}

		claims, err := tokenService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(UserContextKey, claims.UserID)
		c.Set(UsernameContextKey, claims.Username)
		c.Next()
	}
}

// OptionalAuthMiddleware checks for authentication but doesn't enforce it.
// If a valid token is present it sets the userID in the context, otherwise
// the request continues anonymously.
func OptionalAuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("access_token")
		if err != nil || strings.TrimSpace(tokenString) == "" {
			c.Next()
			return
		}

		claims, err := tokenService.ValidateToken(tokenString)
		if err == nil && claims != nil {
			c.Set(UserContextKey, claims.UserID)
			c.Set(UsernameContextKey, claims.Username)
		}

		c.Next()
	}
}

// UserIDFromContext returns the authenticated user's ID, if any.
func UserIDFromContext(c *gin.Context) (int, bool) {
	v, ok := c.Get(UserContextKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
