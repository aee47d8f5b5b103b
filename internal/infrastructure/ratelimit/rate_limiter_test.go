package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginBucketExhausts(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("203.0.113.7", "login")
		assert.True(t, allowed, "attempt %d", i+1)
	}

	allowed, retryAfter := limiter.Allow("203.0.113.7", "login")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
}

func TestBucketsAreScopedPerCaller(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 5; i++ {
		limiter.Allow("203.0.113.7", "login")
	}

	allowed, _ := limiter.Allow("198.51.100.2", "login")
	assert.True(t, allowed)
}

func TestTokenBucketRefills(t *testing.T) {
	bucket := NewTokenBucket(1, 1, 10*time.Millisecond)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)

	allowed, _ = bucket.Allow()
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)

	allowed, _ = bucket.Allow()
	assert.True(t, allowed)
}
