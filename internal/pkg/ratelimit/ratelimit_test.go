package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowWithinWindow(t *testing.T) {
	rl := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		require.True(t, rl.Allow("1.2.3.4"))
	}
	require.False(t, rl.Allow("1.2.3.4"))
	require.Equal(t, 0, rl.GetRemaining("1.2.3.4"))

	// Keys are independent.
	require.True(t, rl.Allow("5.6.7.8"))
	require.Equal(t, 2, rl.GetRemaining("5.6.7.8"))
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	rl := New(1, 20*time.Millisecond)

	require.True(t, rl.Allow("k"))
	require.False(t, rl.Allow("k"))

	require.Eventually(t, func() bool { return rl.Allow("k") }, time.Second, 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	rl.Cleanup()
	require.Equal(t, 1, rl.GetRemaining("k"))
}

func TestRateLimiter_StartCleanupIgnoresZeroInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := New(1, 0)
	require.NotPanics(t, func() { rl.StartCleanup(ctx, 0) })
	require.NotPanics(t, func() { rl.StartCleanup(ctx, -time.Second) })
}

func TestRateLimiter_StartCleanupStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	rl := New(1, 5*time.Millisecond)
	require.True(t, rl.Allow("k"))
	rl.StartCleanup(ctx, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		rl.mu.RLock()
		defer rl.mu.RUnlock()
		return len(rl.requests) == 0
	}, time.Second, 5*time.Millisecond)
	cancel()
}
