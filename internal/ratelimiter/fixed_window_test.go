package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("10.0.0.1")
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
}

func TestFixedWindowLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(2, time.Minute)

	rl.Allow("10.0.0.2")
	rl.Allow("10.0.0.2")

	allowed, retryAfter := rl.Allow("10.0.0.2")
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)

	// A different client is unaffected.
	allowed, _ = rl.Allow("10.0.0.3")
	assert.True(t, allowed)
}
