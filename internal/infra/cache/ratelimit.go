package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const rateLimitPrefix = "rate_limit:"

// WindowLimiter counts requests per key in fixed windows shared by every
// replica that talks to the same redis.
type WindowLimiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
}

func NewWindowLimiter(rdb *redis.Client, limit int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{rdb: rdb, limit: int64(limit), window: window}
}

// Allow seeds the window key with its TTL and increments it in one MULTI, so
// a counter never exists without an expiry.
func (l *WindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := rateLimitPrefix + key

	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, k, 0, l.window)
		incr = pipe.Incr(ctx, k)
		return nil
	})
	if err != nil {
		return false, err
	}

	return incr.Val() <= l.limit, nil
}
