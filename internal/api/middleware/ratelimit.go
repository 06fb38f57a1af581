package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/peerpath/pkg/logger"
	"github.com/d60-Lab/peerpath/pkg/response"
)

// idle limiters are dropped after this long
const limiterIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per user. It guards the AI routes,
// which cost a model call each.
type RateLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*userLimiter
	now      func() time.Time
}

type userLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	return &RateLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*userLimiter),
		now:      time.Now,
	}
}

// Allow reports whether key may spend one token now.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	ul, ok := l.limiters[key]
	if !ok {
		l.sweep(now)
		ul = &userLimiter{lim: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = ul
	}
	ul.lastSeen = now
	return ul.lim.AllowN(now, 1)
}

func (l *RateLimiter) sweep(now time.Time) {
	for k, ul := range l.limiters {
		if now.Sub(ul.lastSeen) > limiterIdleTTL {
			delete(l.limiters, k)
		}
	}
}

// Middleware limits by authenticated user, falling back to client IP. It
// must run after JWTAuth.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := UserID(c)
		if key == "" {
			key = c.ClientIP()
		}
		if !l.Allow(key) {
			logger.Warn("rate limited", zap.String("key", key), zap.String("path", c.FullPath()))
			response.TooManyRequests(c, "too many AI requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
