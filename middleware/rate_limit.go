package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/cppla/coauthors/utils"
)

const limiterIdle = 5 * time.Minute

type rateLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

// ipLimiters hands out one token bucket per client IP and forgets idle ones.
type ipLimiters struct {
	mu    sync.Mutex
	limit rate.Limit
	burst int
	byIP  map[string]*rateLimiter
}

func newIPLimiters(perMinute int) *ipLimiters {
	perMinute = max(perMinute, 1)
	return &ipLimiters{
		limit: rate.Every(time.Minute / time.Duration(perMinute)),
		burst: max(perMinute/2, 1),
		byIP:  map[string]*rateLimiter{},
	}
}

func (l *ipLimiters) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, rl := range l.byIP {
		if now.After(rl.expires) {
			delete(l.byIP, key)
		}
	}

	rl, ok := l.byIP[ip]
	if !ok {
		rl = &rateLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byIP[ip] = rl
	}
	rl.expires = now.Add(limiterIdle)
	return rl.limiter.AllowN(now, 1)
}

// RateLimitMiddleware applies a per-IP token bucket refilled perMinute times a minute.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	limiters := newIPLimiters(perMinute)

	return func(ctx *gin.Context) {
		if !limiters.allow(ctx.ClientIP(), time.Now()) {
			utils.Error(ctx, http.StatusTooManyRequests, "rest_rate_limited", "Rate limit exceeded.")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
