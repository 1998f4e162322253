package ratelimit_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/catalog-editor/internal/config"
	"github.com/aaravmahajanofficial/catalog-editor/internal/ratelimit"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subject = "7f1c2b4e-4f0a-4a39-9d3e-0c8a3f3f5d10"

var (
	key     = "catalog-editor:submit_attempts:" + subject
	now     = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	rateCfg = config.RateConfig{MaxAttempts: 3, WindowSize: time.Minute}
)

func setup() (ratelimit.Limiter, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()
	limiter := ratelimit.NewRedisLimiter(client, rateCfg, ratelimit.WithClock(func() time.Time { return now }))

	return limiter, mock
}

func expectPipeline(mock redismock.ClientMock, count int64) {
	windowStart := now.Add(-rateCfg.WindowSize).UnixNano()
	mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(windowStart, 10)).SetVal(0)
	mock.ExpectZAdd(key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()}).SetVal(1)
	mock.ExpectZCard(key).SetVal(count)
	mock.ExpectExpire(key, rateCfg.WindowSize).SetVal(true)
}

func TestAllow(t *testing.T) {
	t.Run("Success - Under the limit", func(t *testing.T) {
		// Arrange
		limiter, mock := setup()
		expectPipeline(mock, 1)

		// Act
		allowed, remaining, retryAfter, err := limiter.Allow(t.Context(), subject)

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 2, remaining)
		assert.Zero(t, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Last allowed attempt", func(t *testing.T) {
		// Arrange
		limiter, mock := setup()
		expectPipeline(mock, 3)

		// Act
		allowed, remaining, _, err := limiter.Allow(t.Context(), subject)

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, remaining)
	})

	t.Run("Failure - Over the limit", func(t *testing.T) {
		// Arrange
		limiter, mock := setup()
		expectPipeline(mock, 4)
		oldest := now.Add(-45 * time.Second)
		mock.ExpectZRangeWithScores(key, 0, 0).SetVal([]redis.Z{{Score: float64(oldest.UnixNano()), Member: strconv.FormatInt(oldest.UnixNano(), 10)}})

		// Act
		allowed, remaining, retryAfter, err := limiter.Allow(t.Context(), subject)

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
		assert.Equal(t, 15, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis error", func(t *testing.T) {
		// Arrange
		limiter, mock := setup()
		mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(now.Add(-time.Minute).UnixNano(), 10)).SetErr(errors.New("redis down"))

		// Act
		allowed, _, _, err := limiter.Allow(t.Context(), subject)

		// Assert
		require.Error(t, err)
		assert.False(t, allowed)
		assert.Contains(t, err.Error(), "rate limit")
	})
}
