package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/c13-isotope/landingpage/utils"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware applies a fixed window of max requests per
// window per client IP, backed by Redis (INCR + EXPIRE on first hit).
// If Redis is unavailable the request is allowed through: the limiter
// protects against abuse, it is not a correctness gate.
func RateLimitMiddleware(max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		rdb := utils.GetRedis()
		if rdb == nil {
			c.Next()
			return
		}
		ctx := utils.RedisCtx()
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}
		if count > int64(max) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
