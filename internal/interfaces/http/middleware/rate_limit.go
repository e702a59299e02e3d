// internal/interfaces/http/middleware/rate_limit.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
)

// RateLimit implements a fixed one-minute window per client IP in Redis.
// Without Redis, or when Redis fails, requests are let through.
func RateLimit(cfg *config.Config, redisClient *redis.Client, logger *logrus.Logger) gin.HandlerFunc {
	limit := cfg.Security.RateLimitPerMinute

	return func(c *gin.Context) {
		if redisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())

		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		pipe := redisClient.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, time.Minute)
		ttl := pipe.TTL(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			logger.WithError(err).Warn("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		current := int(incr.Val())
		reset := time.Now().Add(ttl.Val())

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if current > limit {
			c.Header("Retry-After", strconv.Itoa(int(ttl.Val().Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": int(ttl.Val().Seconds()),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-current))
		c.Next()
	}
}
