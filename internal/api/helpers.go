package api

import (
	"net/http" // HTTP status codes

	"lifedash/internal/middleware" // Current-user extraction
	"lifedash/internal/utils"      // Cache invalidation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// currentUser returns the authenticated user's ID, answering 401 when the
// session carries none. Rollup handlers short-circuit before any query.
func currentUser(c *gin.Context) (uint, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return id, ok
}

// invalidateViews drops the user's derived-view caches after a successful
// mutation so the next read recomputes from the store
func invalidateViews(c *gin.Context, userID uint) {
	// Redis client is injected into the context by the route group
	if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
		utils.InvalidateUserViews(c.Request.Context(), rdb, userID)
	}
}
