package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpacer/internal/core/port"
)

// runLockerTests holds the behaviour every port.Locker must share.
func runLockerTests(t *testing.T, newLocker func(t *testing.T) port.Locker) {
	t.Run("TryLock", func(t *testing.T) {
		testTryLock(t, newLocker(t))
	})
	t.Run("SingleWinner", func(t *testing.T) {
		testSingleWinner(t, newLocker(t))
	})
}

func testTryLock(t *testing.T, l port.Locker) {
	ctx := context.Background()

	release, ok, err := l.TryLock(ctx, "rollup", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.TryLock(ctx, "rollup", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder is refused")

	other, ok, err := l.TryLock(ctx, "accrual", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "names are independent")
	other()

	release()
	release()
	again, ok, err := l.TryLock(ctx, "rollup", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	again()
}

// testSingleWinner ensures only one of many concurrent callers holds the
// lock.
func testSingleWinner(t *testing.T, l port.Locker) {
	var (
		wg      sync.WaitGroup
		winners atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok, _ := l.TryLock(context.Background(), "activation", time.Minute); ok {
				winners.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()
	assert.Equal(t, int32(1), winners.Load())
}
