package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultWindow = time.Minute
	defaultMax    = 10
)

// AttemptLimiter is a fixed-window counter backed by Redis, used to throttle
// credential endpoints. Key format: ratelimit:<scope>:<subject>
type AttemptLimiter struct {
	client *redis.Client
	window time.Duration
	max    int64
}

// NewAttemptLimiter creates a limiter allowing max attempts per window.
// Non-positive values fall back to defaults.
func NewAttemptLimiter(client *redis.Client, window time.Duration, max int64) *AttemptLimiter {
	if window <= 0 {
		window = defaultWindow
	}
	if max <= 0 {
		max = defaultMax
	}
	return &AttemptLimiter{client: client, window: window, max: max}
}

// Allow records one attempt for subject under scope and reports whether it is
// still inside the window budget. The INCR+EXPIRE pair keeps the counter
// self-cleaning.
func (l *AttemptLimiter) Allow(ctx context.Context, scope, subject string) (bool, error) {
	key := l.key(scope, subject)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *AttemptLimiter) key(scope, subject string) string {
	return fmt.Sprintf("ratelimit:%s:%s", scope, subject)
}
