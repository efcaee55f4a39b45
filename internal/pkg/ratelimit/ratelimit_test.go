package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAllow_WithinLimit(t *testing.T) {
	rl := New(2, time.Minute)

	require.True(t, rl.Allow("1.2.3.4"))
	require.True(t, rl.Allow("1.2.3.4"))
	require.False(t, rl.Allow("1.2.3.4"))

	// Other keys are independent.
	require.True(t, rl.Allow("5.6.7.8"))
}

func TestAllow_WindowSlides(t *testing.T) {
	rl := New(1, 50*time.Millisecond)

	require.True(t, rl.Allow("1.2.3.4"))
	require.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(80 * time.Millisecond)
	require.True(t, rl.Allow("1.2.3.4"))
}

func TestRemaining(t *testing.T) {
	rl := New(3, time.Minute)

	require.Equal(t, 3, rl.Remaining("1.2.3.4"))
	rl.Allow("1.2.3.4")
	require.Equal(t, 2, rl.Remaining("1.2.3.4"))
	rl.Allow("1.2.3.4")
	rl.Allow("1.2.3.4")
	rl.Allow("1.2.3.4")
	require.Equal(t, 0, rl.Remaining("1.2.3.4"))
}

func TestCleanup(t *testing.T) {
	rl := New(1, 10*time.Millisecond)

	rl.Allow("1.2.3.4")
	time.Sleep(20 * time.Millisecond)
	rl.Cleanup()

	rl.mu.Lock()
	_, exists := rl.requests["1.2.3.4"]
	rl.mu.Unlock()
	require.False(t, exists)
}
