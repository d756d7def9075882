package v1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_Burst(t *testing.T) {
	limiter := NewIPRateLimiter(RateLimiterConfig{Rate: 0.001, Burst: 2})

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// Другой IP имеет свое ведро
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestIPRateLimiter_ForgetsIdleClients(t *testing.T) {
	limiter := NewIPRateLimiter(RateLimiterConfig{Rate: 0.001, Burst: 1, ExpiryTime: time.Millisecond})

	assert.True(t, limiter.Allow("10.0.0.1"))
	time.Sleep(5 * time.Millisecond)
	assert.True(t, limiter.Allow("10.0.0.3"))

	limiter.mu.Lock()
	_, stillThere := limiter.limiters["10.0.0.1"]
	limiter.mu.Unlock()
	assert.False(t, stillThere)
}
