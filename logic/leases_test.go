package logic

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaseSingleHolder(t *testing.T) {
	leases := newAccountLeases()

	assert.True(t, leases.TryAcquire(7))
	assert.False(t, leases.TryAcquire(7))
	assert.True(t, leases.TryAcquire(8))
	assert.Equal(t, 2, leases.HeldCount())

	leases.Release(7)
	assert.True(t, leases.TryAcquire(7))
	leases.Release(7)
	leases.Release(8)
	assert.Equal(t, 0, leases.HeldCount())
}

func TestLeaseConcurrentAcquire(t *testing.T) {
	leases := newAccountLeases()
	var wins int32
	var wg sync.WaitGroup

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if leases.TryAcquire(42) {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	assert.Equal(t, 1, leases.HeldCount())
}
