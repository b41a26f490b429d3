package middleware

import (
	"net/http"               // HTTP status codes
	"strings"                // String manipulation
	"time"                   // For remaining token lifetime
	"lifedash/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// JWTAuthMiddleware validates JWT tokens, rejects signed-out tokens and
// extracts user information into the Gin context
func JWTAuthMiddleware(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		// Reject tokens that were signed out
		if utils.IsTokenDenied(c.Request.Context(), rdb, claims.ID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been signed out"})
			return
		}
		c.Set("userID", claims.UserID) // Store userID in context
		c.Set("tokenID", claims.ID)    // Store token ID for sign-out
		// Store remaining lifetime so sign-out can size the denylist TTL
		if claims.ExpiresAt != nil {
			c.Set("tokenTTL", time.Until(claims.ExpiresAt.Time))
		}
		c.Next() // Proceed to the next handler
	}
}
