package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors keeps one token bucket per client key and forgets keys that have
// been idle for longer than ttl.
type Visitors struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

func NewVisitors(rps int, burst int, ttl time.Duration) *Visitors {
	return &Visitors{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (v *Visitors) Allow(key string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	vis, ok := v.visitors[key]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(v.limit, v.burst)}
		v.visitors[key] = vis
	}
	vis.lastSeen = now

	return vis.limiter.AllowN(now, 1)
}

// Cleanup drops visitors idle for longer than ttl and returns how many were removed.
func (v *Visitors) Cleanup() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	removed := 0
	now := v.now()
	for key, vis := range v.visitors {
		if now.Sub(vis.lastSeen) > v.ttl {
			delete(v.visitors, key)
			removed++
		}
	}
	return removed
}

func (v *Visitors) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

// Limit returns a gin middleware limiting requests per client IP.
func Limit(rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	visitors := NewVisitors(rps, burst, ttl)

	go func() {
		ticker := time.NewTicker(ttl)
		defer ticker.Stop()
		for range ticker.C {
			visitors.Cleanup()
		}
	}()

	return Middleware(visitors)
}

func Middleware(visitors *Visitors) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !visitors.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
