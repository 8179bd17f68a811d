package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/PhiHoang41/lumina-backend/internal/cache"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// LoginRateLimiter throttles failed login attempts per client IP using a
// Redis counter. Successful logins are never counted, so legitimate users
// sharing a NAT are not locked out by their own traffic.
type LoginRateLimiter struct {
	redis  *cache.RedisClient
	max    int
	window time.Duration
}

// NewLoginRateLimiter creates a limiter allowing max failed attempts per window.
func NewLoginRateLimiter(redis *cache.RedisClient, max int, window time.Duration) *LoginRateLimiter {
	return &LoginRateLimiter{redis: redis, max: max, window: window}
}

func (l *LoginRateLimiter) key(ip string) string {
	return fmt.Sprintf("login_attempts:%s", ip)
}

// Handle blocks requests from IPs that exceeded the failure budget and
// counts a new failure whenever the wrapped handler responds 401. Redis
// errors fail open so an unavailable limiter never takes login down.
func (l *LoginRateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := c.ClientIP()

		if raw, err := l.redis.Get(ctx, l.key(ip)); err == nil {
			if n, convErr := strconv.Atoi(raw); convErr == nil && n >= l.max {
				utils.Error(c, http.StatusTooManyRequests, "Too many failed login attempts, try again later")
				c.Abort()
				return
			}
		}

		c.Next()

		if c.Writer.Status() == http.StatusUnauthorized {
			if _, err := l.redis.Incr(ctx, l.key(ip), l.window); err != nil {
				log.Warn().Err(err).Str("ip", ip).Msg("login rate limiter unavailable")
			}
		}
	}
}
