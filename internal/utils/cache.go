package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // For building per-user cache keys
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes a key from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err() // Delete key from Redis
}

// DashboardCacheKey is the cache key for a user's dashboard snapshot
func DashboardCacheKey(userID uint) string {
	return "dashboard:user:" + strconv.Itoa(int(userID))
}

// TxPageCacheKey is the cache key for one page of a user's transaction history
func TxPageCacheKey(userID uint, page, pageSize int) string {
	return "txhistory:user:" + strconv.Itoa(int(userID)) + ":page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
}

// InvalidateUserViews drops a user's derived-view cache entries after a
// mutation so the next read recomputes from the store. Paginated transaction
// history is invalidated for the first 5 default-size pages.
func InvalidateUserViews(ctx context.Context, rdb *redis.Client, userID uint) {
	_ = DeleteCache(ctx, rdb, DashboardCacheKey(userID)) // Invalidate dashboard snapshot
	// Invalidate the first pages of transaction history
	for i := 1; i <= 5; i++ {
		_ = DeleteCache(ctx, rdb, TxPageCacheKey(userID, i, 20))
	}
}

// DenylistToken marks a JWT ID as signed out until the token's natural expiry
func DenylistToken(ctx context.Context, rdb *redis.Client, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // Already expired, nothing to deny
	}
	return rdb.Set(ctx, "jwt:denylist:"+jti, "1", ttl).Err() // Store the denylist marker
}

// IsTokenDenied reports whether a JWT ID has been signed out
func IsTokenDenied(ctx context.Context, rdb *redis.Client, jti string) bool {
	n, err := rdb.Exists(ctx, "jwt:denylist:"+jti).Result() // Check for the denylist marker
	return err == nil && n > 0
}
