package ratelimit

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limits := SubmissionLimits{RequestsPerMinute: 5}
	key := "patient:1"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(key, limits)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(key, limits)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisRateLimiter_Allow_PerHour(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limits := SubmissionLimits{RequestsPerHour: 3}
	key := "patient:2"

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(key, limits)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(key, limits)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisRateLimiter_Allow_ZeroLimitsDisabled(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	key := "patient:3"

	for i := 0; i < 20; i++ {
		allowed, err := limiter.Allow(key, SubmissionLimits{})
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limits := SubmissionLimits{RequestsPerMinute: 1}
	key := "patient:4"

	allowed, err := limiter.Allow(key, limits)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(key, limits)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(key))

	allowed, err = limiter.Allow(key, limits)
	require.NoError(t, err)
	assert.True(t, allowed)
}
