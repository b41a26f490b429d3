package middleware

import (
	"net/http"                // HTTP status codes
	"lifedash/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// CurrentUserID extracts the authenticated user's ID from the Gin context.
// The boolean is false when no user is authenticated.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID") // Get userID from context
	if !exists {
		return 0, false // No authenticated user
	}
	id, ok := v.(uint) // Assert the stored type
	return id, ok
}

// RequireUserMiddleware verifies the token's user still exists in the
// database on each request, so rollups never run for a deleted account
func RequireUserMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := CurrentUserID(c) // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found or any error, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			return
		}
		c.Set("user", user) // Store the full user for handlers that need it
		// Proceed to the next handler
		c.Next()
	}
}
