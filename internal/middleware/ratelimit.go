package middleware

import (
	"net/http"
	"strconv"
	"time"

	"jobhunt_backend/internal/config"
	"jobhunt_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimiter builds a fixed-window limiter backed by an in-memory
// store. Each policy (general, auth) gets its own limiter so the windows
// do not interfere.
func NewRateLimiter(policy config.RateLimitPolicy) *limiter.Limiter {
	rate := limiter.Rate{
		Period: time.Duration(policy.WindowSeconds) * time.Second,
		Limit:  policy.Limit,
	}
	return limiter.New(memory.NewStore(), rate)
}

// RateLimitMiddleware enforces the limiter per client IP. Exceeding the
// window returns 429 with a Retry-After header and a body telling the
// client when to come back.
func RateLimitMiddleware(instance *limiter.Limiter, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := name + ":" + c.ClientIP()
		limiterCtx, err := instance.Get(c.Request.Context(), key)
		if err != nil {
			// The limiter failing must not take the API down.
			logger.CtxWithError(c.Request.Context(), "rate limiter failure", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(limiterCtx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(limiterCtx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(limiterCtx.Reset, 10))

		if limiterCtx.Reached {
			retryAfter := limiterCtx.Reset - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"Error":      "Too many requests. Please try again later.",
				"RetryAfter": retryAfter,
			})
			return
		}

		c.Next()
	}
}
