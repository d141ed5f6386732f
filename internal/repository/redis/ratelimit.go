package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/taskchat/internal/config"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPrefix = "ratelimit:"
)

// Decision is the outcome of a single rate limit check
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RateLimiter counts requests per key in fixed windows
type RateLimiter struct {
	client *Client
	name   string
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter creates a limiter allowing cfg.Requests per cfg.Window.
// The name keeps counters of different limiters apart.
func NewRateLimiter(client *Client, name string, cfg config.LimitConfig) *RateLimiter {
	return &RateLimiter{
		client: client,
		name:   name,
		limit:  cfg.Requests,
		window: cfg.Window,
		now:    time.Now,
	}
}

func (r *RateLimiter) key(key string, windowStart time.Time) string {
	return fmt.Sprintf("%s%s:%s:%d", rateLimitPrefix, r.name, key, windowStart.Unix())
}

// Allow counts one request for key and reports whether it fits in the current window
func (r *RateLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	windowStart := r.now().Truncate(r.window)
	windowEnd := windowStart.Add(r.window)
	fullKey := r.key(key, windowStart)

	pipe := r.client.rdb.Pipeline()

	// Increment counter
	incrCmd := pipe.Incr(ctx, fullKey)

	// Set expiry if key is new
	pipe.ExpireNX(ctx, fullKey, r.window)

	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return Decision{}, fmt.Errorf("failed to execute rate limit check: %w", err)
	}

	count := incrCmd.Val()
	remaining := r.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= int64(r.limit),
		Limit:     r.limit,
		Remaining: remaining,
		ResetAt:   windowEnd,
	}, nil
}

// Reset clears the counter of the current window for key
func (r *RateLimiter) Reset(ctx context.Context, key string) error {
	windowStart := r.now().Truncate(r.window)
	return r.client.rdb.Del(ctx, r.key(key, windowStart)).Err()
}
