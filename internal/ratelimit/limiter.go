package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/catalog-editor/internal/cache"
	"github.com/aaravmahajanofficial/catalog-editor/internal/config"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "submit_attempts"

type Limiter interface {
	// Allow returns isAllowed, attempts left, seconds to wait, error
	Allow(ctx context.Context, subject string) (bool, int, int, error)
}

type redisLimiter struct {
	client *redis.Client
	cfg    config.RateConfig
	now    func() time.Time
}

type Option func(*redisLimiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *redisLimiter) {
		l.now = now
	}
}

func NewRedisLimiter(client *redis.Client, cfg config.RateConfig, opts ...Option) Limiter {
	l := &redisLimiter{client: client, cfg: cfg, now: time.Now}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Allow records an attempt by subject and counts the attempts inside the
// window. Each attempt is a sorted set member scored by its timestamp.
func (l *redisLimiter) Allow(ctx context.Context, subject string) (bool, int, int, error) {
	key := cache.Key(keyPrefix, subject)

	now := l.now()
	windowStart := now.Add(-l.cfg.WindowSize).UnixNano()

	pipe := l.client.Pipeline()

	// drop attempts that left the window
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, l.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts > l.cfg.MaxAttempts {
		scores, err := l.client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil || len(scores) == 0 {
			return false, 0, int(l.cfg.WindowSize.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		oldest := time.Unix(0, int64(scores[0].Score))
		retryAfter := max(oldest.Add(l.cfg.WindowSize).Sub(now), time.Second)

		slog.Debug("Rate limit exceeded", slog.String("subject", subject), slog.Int64("attempts", attempts))
		return false, 0, int(retryAfter.Round(time.Second).Seconds()), nil
	}

	return true, int(l.cfg.MaxAttempts - attempts), 0, nil
}
