package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// bucket holds the remaining calls for one client in the current window
type bucket struct {
	mu       sync.Mutex
	tokens   int
	refillAt time.Time
	seenAt   time.Time
}

// RateLimiter manages token buckets per client IP
type RateLimiter struct {
	mu       sync.RWMutex
	buckets  map[string]*bucket
	capacity int
	interval time.Duration
	now      func() time.Time

	// sweepAt is when idle buckets are next dropped, in unix nanoseconds
	sweepAt atomic.Int64
}

// NewRateLimiter allows capacity calls per interval for each client.
// A capacity below 1 disables limiting. Idle buckets are dropped by the
// calls themselves, so a limiter owns no goroutine and needs no Stop.
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	limiter := &RateLimiter{
		buckets:  make(map[string]*bucket),
		capacity: capacity,
		interval: interval,
		now:      time.Now,
	}
	limiter.sweepAt.Store(limiter.now().Add(limiter.sweepEvery()).UnixNano())
	return limiter
}

// sweepEvery is one window, but no more often than once a minute
func (rl *RateLimiter) sweepEvery() time.Duration {
	if rl.interval < time.Minute {
		return time.Minute
	}
	return rl.interval
}

// maybeSweep runs sweep when it is due. Only the caller that moves
// sweepAt forward does the work.
func (rl *RateLimiter) maybeSweep(now time.Time) {
	due := rl.sweepAt.Load()
	if now.UnixNano() < due {
		return
	}
	if !rl.sweepAt.CompareAndSwap(due, now.Add(rl.sweepEvery()).UnixNano()) {
		return
	}
	rl.sweep()
}

// sweep drops buckets idle for more than two windows
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for ip, b := range rl.buckets {
		b.mu.Lock()
		if now.Sub(b.seenAt) > 2*rl.interval {
			delete(rl.buckets, ip)
		}
		b.mu.Unlock()
	}
}

// Allow consumes one token for ip and reports what is left
func (rl *RateLimiter) Allow(ip string) (bool, int) {
	if rl.capacity < 1 {
		return true, 0
	}
	rl.maybeSweep(rl.now())

	rl.mu.RLock()
	b, exists := rl.buckets[ip]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// another request may have created it meanwhile
		if b, exists = rl.buckets[ip]; !exists {
			b = &bucket{tokens: rl.capacity, refillAt: rl.now().Add(rl.interval)}
			rl.buckets[ip] = b
		}
		rl.mu.Unlock()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := rl.now()
	b.seenAt = now
	if now.After(b.refillAt) {
		b.tokens = rl.capacity
		b.refillAt = now.Add(rl.interval)
	}

	if b.tokens > 0 {
		b.tokens--
		return true, b.tokens
	}
	return false, 0
}

// retryAfter returns whole seconds until ip's bucket refills
func (rl *RateLimiter) retryAfter(ip string) int {
	rl.mu.RLock()
	b, ok := rl.buckets[ip]
	rl.mu.RUnlock()
	if !ok {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	secs := int(b.refillAt.Sub(rl.now()).Seconds() + 0.999)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// RateLimitMiddleware limits every request passing through it per client IP.
// Mount it on the routes that need it. The IP comes from gin's ClientIP, so
// X-Forwarded-For only counts when the engine trusts the connecting proxy.
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.capacity < 1 {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		allowed, remaining := limiter.Allow(clientIP)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.capacity))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", limiter.retryAfter(clientIP)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
