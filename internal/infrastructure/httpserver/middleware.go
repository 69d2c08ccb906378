package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"TextHumanizer/internal/ports"
)

const requestIDKey = "requestID"

// RequestID tags every request with a uuid, echoed in the response header
// and attached to log lines.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RateLimit rejects requests over the per-IP budget before any pipeline
// work happens.
func RateLimit(limiter ports.RateLimiter, limit int, window time.Duration, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := limiter.Check(c.ClientIP(), limit, window)
		if decision.Allowed {
			c.Next()
			return
		}

		if logger != nil {
			logger.Info("rate limit exceeded",
				"ip", c.ClientIP(),
				"request_id", requestID(c),
				"retry_after_ms", decision.RetryAfter.Milliseconds())
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":        "Too many requests. Please slow down.",
			"retryAfterMs": decision.RetryAfter.Milliseconds(),
		})
	}
}
