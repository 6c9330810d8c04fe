package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const limiterWindow = 15 * time.Minute

// LoginLimiter tracks failed login attempts per email in Redis.
// Key format: login_fail:<normalized_email>
//
// The counter expires with the window, so a lockout never outlives it.
type LoginLimiter struct {
	client *redis.Client
	max    int
}

// NewLoginLimiter wraps the given Redis client. max is the number of failures
// within the window after which TooMany reports true.
func NewLoginLimiter(client *redis.Client, max int) *LoginLimiter {
	return &LoginLimiter{client: client, max: max}
}

// TooMany reports whether the email has exhausted its failure budget.
func (l *LoginLimiter) TooMany(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n >= l.max, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, limiterWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login limiter record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		return fmt.Errorf("login limiter reset: %w", err)
	}
	return nil
}

func (l *LoginLimiter) key(email string) string {
	return "login_fail:" + email
}
