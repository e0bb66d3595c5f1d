package middleware

import (
	"net/http" // HTTP status codes
	"sync"     // Mutex for the limiter map

	"github.com/gin-gonic/gin" // Gin web framework
	"golang.org/x/time/rate"   // Token bucket rate limiter
)

// ipLimiterCache keeps one rate limiter per client IP with double-check locking.
// Counters are in-memory only and reset on process restart.
type ipLimiterCache struct {
	limiters map[string]*rate.Limiter // Limiter per client IP
	mu       sync.RWMutex             // Guards the limiter map
	rate     rate.Limit               // Requests per second
	burst    int                      // Maximum burst size
}

// newIPLimiterCache creates a new limiter cache
func newIPLimiterCache(rps float64, burst int) *ipLimiterCache {
	return &ipLimiterCache{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

// get returns the rate limiter for a client IP, creating one if needed
func (lc *ipLimiterCache) get(ip string) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[ip]
	lc.mu.RUnlock()
	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()
	// Double-check after acquiring write lock
	if limiter, exists = lc.limiters[ip]; exists {
		return limiter
	}
	// Drop all counters if the map grows unbounded
	if len(lc.limiters) > 10000 {
		lc.limiters = make(map[string]*rate.Limiter)
	}
	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[ip] = limiter
	return limiter
}

// RateLimitMiddleware limits requests per client IP. Exceeding the limit
// returns 429 with a localized message.
func RateLimitMiddleware(rps float64, burst int, message string) gin.HandlerFunc {
	cache := newIPLimiterCache(rps, burst) // Per-IP limiter cache
	return func(c *gin.Context) {
		if !cache.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   gin.H{"code": "TOO_MANY_REQUESTS", "message": message},
			})
			return
		}
		c.Next() // Proceed to the next handler
	}
}
