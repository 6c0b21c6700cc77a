package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
)

// Limiter decides whether one more request for key may pass.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

// LocalLimiter keeps a token bucket per key in process memory. Idle keys are
// swept on access once per idleAfter.
type LocalLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	r         rate.Limit
	burst     int
	idleAfter time.Duration
	lastSweep time.Time
}

func NewLocalLimiter(rps float64, burst int) *LocalLimiter {
	return &LocalLimiter{
		clients:   make(map[string]*client),
		r:         rate.Limit(rps),
		burst:     burst,
		idleAfter: 3 * time.Minute,
		lastSweep: time.Now(),
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > l.idleAfter {
		for k, c := range l.clients {
			if now.Sub(c.seen) > l.idleAfter {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[key]
	if !ok {
		c = &client{lim: rate.NewLimiter(l.r, l.burst)}
		l.clients[key] = c
	}
	c.seen = now
	return c.lim.AllowN(now, 1), nil
}

// RateLimit keys on client IP and route. Limiter errors let the request
// through.
func RateLimit(l Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}

		key := c.ClientIP() + ":" + c.FullPath()
		ok, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			if log != nil {
				log.Warn("rate limiter unavailable", zap.Error(err))
			}
			c.Next()
			return
		}
		if !ok {
			httperr.Write(c, http.StatusTooManyRequests, "too_many_requests", "Too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
