package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shareit-go/service-shareit/internal/response"
	"golang.org/x/time/rate"
)

const minIdleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter keeps one token bucket per requester. Buckets idle for longer than it takes
// them to refill completely are dropped, so eviction never hands a requester extra tokens.
type RateLimiter struct {
	buckets   sync.Map
	rps       rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep atomic.Int64
	now       func() time.Time
}

// NewRateLimiter creates a limiter. A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 5
	}
	idle := minIdleTTL
	if rps > 0 {
		if refill := time.Duration(float64(burst) / rps * float64(time.Second)); refill > idle {
			idle = refill
		}
	}
	l := &RateLimiter{rps: rate.Limit(rps), burst: burst, idleTTL: idle, now: time.Now}
	l.lastSweep.Store(l.now().UnixNano())
	return l
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	now := l.now()
	l.maybeSweep(now)

	v, ok := l.buckets.Load(key)
	if !ok {
		v, _ = l.buckets.LoadOrStore(key, &bucket{limiter: rate.NewLimiter(l.rps, l.burst)})
	}
	b := v.(*bucket)
	b.lastSeen.Store(now.UnixNano())
	return b.limiter
}

// maybeSweep drops idle buckets at most once per idleTTL.
func (l *RateLimiter) maybeSweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(l.idleTTL) {
		return
	}
	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	cutoff := now.Add(-l.idleTTL).UnixNano()
	l.buckets.Range(func(key, v any) bool {
		if v.(*bucket).lastSeen.Load() < cutoff {
			l.buckets.Delete(key)
		}
		return true
	})
}

// Middleware rejects requests over the limit with 429. Requesters are keyed by user id
// when identity is known and by client IP otherwise.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rps <= 0 {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if id, ok := GetUserID(c); ok {
			key = "user:" + strconv.FormatInt(id, 10)
		}

		if !l.limiter(key).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorBody{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
