package logic

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"post_later/shared"
)

func TestBackoffDoubling(t *testing.T) {
	cfg := shared.RetryConfig{BaseWaitSecs: 100, MaxWaitSecs: 100000, Jitter: 0}
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, 100*time.Second, backoffDelay(&cfg, 1, rng))
	assert.Equal(t, 200*time.Second, backoffDelay(&cfg, 2, rng))
	assert.Equal(t, 400*time.Second, backoffDelay(&cfg, 3, rng))
	assert.Equal(t, 800*time.Second, backoffDelay(&cfg, 4, rng))

	// Out-of-range retry counts clamp to the first step
	assert.Equal(t, 100*time.Second, backoffDelay(&cfg, 0, rng))
	assert.Equal(t, 100*time.Second, backoffDelay(&cfg, -3, rng))
}

func TestBackoffCap(t *testing.T) {
	cfg := shared.RetryConfig{BaseWaitSecs: 4800, MaxWaitSecs: 86400, Jitter: 0}
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, 4800*time.Second, backoffDelay(&cfg, 1, rng))
	assert.Equal(t, 9600*time.Second, backoffDelay(&cfg, 2, rng))
	assert.Equal(t, 19200*time.Second, backoffDelay(&cfg, 3, rng))
	assert.Equal(t, 38400*time.Second, backoffDelay(&cfg, 4, rng))
	assert.Equal(t, 76800*time.Second, backoffDelay(&cfg, 5, rng))
	assert.Equal(t, 86400*time.Second, backoffDelay(&cfg, 6, rng))
	assert.Equal(t, 86400*time.Second, backoffDelay(&cfg, 20, rng))
	// Huge retry counts must not overflow into negative durations
	assert.Equal(t, 86400*time.Second, backoffDelay(&cfg, 1000, rng))
}

func TestBackoffJitterBounds(t *testing.T) {
	cfg := shared.RetryConfig{BaseWaitSecs: 1000, MaxWaitSecs: 100000, Jitter: 0.2}
	rng := rand.New(rand.NewSource(42))

	lo := 800 * time.Second
	hi := 1200 * time.Second
	for i := 0; i < 1000; i++ {
		d := backoffDelay(&cfg, 1, rng)
		assert.True(t, d >= lo, "delay %v below jitter floor", d)
		assert.True(t, d <= hi, "delay %v above jitter ceiling", d)
	}
}
