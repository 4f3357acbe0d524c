package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultThrottleLimit  = 10
	defaultThrottleWindow = time.Minute
)

// LoginThrottle bounds login attempts per key within a rolling window,
// backed by a Redis counter with a TTL.
// Key format: login_attempts:<key>
type LoginThrottle struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive limit or window fall back to defaults.
func NewLoginThrottle(client *redis.Client, limit int64, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = defaultThrottleLimit
	}
	if window <= 0 {
		window = defaultThrottleWindow
	}
	return &LoginThrottle{client: client, limit: limit, window: window}
}

// Allow records one attempt for key and reports whether it is still within
// the limit. The window starts at the first attempt and expires with the key.
func (t *LoginThrottle) Allow(ctx context.Context, key string) (bool, error) {
	k := t.key(key)

	n, err := t.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, k, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= t.limit, nil
}

func (t *LoginThrottle) key(key string) string {
	return "login_attempts:" + key
}
