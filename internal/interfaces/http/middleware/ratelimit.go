package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"datadesk/internal/infrastructure/ratelimit"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

// RateLimit throttles requests per client IP using the given limiter and
// config. When the limiter backend is unavailable the request is allowed;
// throttling is protection, not a dependency.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s:%s", c.ClientIP(), c.FullPath())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
