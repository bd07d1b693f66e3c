package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter(t *testing.T) {
	rl := NewFixedWindowLimiter(2, time.Minute)

	allowed, _ := rl.Allow("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = rl.Allow("10.0.0.1")
	assert.True(t, allowed)

	allowed, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)

	// Other clients keep their own budget.
	allowed, _ = rl.Allow("10.0.0.2")
	assert.True(t, allowed)
}
