package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpacer/internal/core/port"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })
	return mr, rc
}

func TestRedis(t *testing.T) {
	runLockerTests(t, func(t *testing.T) port.Locker {
		_, rc := newTestRedis(t)
		return NewRedis(rc, "test:")
	})
}

func TestRedisKeyAndTTL(t *testing.T) {
	mr, rc := newTestRedis(t)
	l := NewRedis(rc, "test:")

	release, ok, err := l.TryLock(context.Background(), "rollup", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists("test:rollup"))
	assert.Equal(t, time.Minute, mr.TTL("test:rollup"))

	release()
	assert.False(t, mr.Exists("test:rollup"))
}

// TestRedisExpiredHolderKeepsNewLock ensures a holder whose TTL ran out
// cannot release the lock another caller took over afterwards.
func TestRedisExpiredHolderKeepsNewLock(t *testing.T) {
	mr, rc := newTestRedis(t)
	l := NewRedis(rc, "test:")
	ctx := context.Background()

	stale, ok, err := l.TryLock(ctx, "accrual", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)
	current, ok, err := l.TryLock(ctx, "accrual", time.Minute)
	require.NoError(t, err)
	require.True(t, ok, "expired lock can be taken")

	stale()
	assert.True(t, mr.Exists("test:accrual"), "stale release leaves the new holder's key")
	_, ok, err = l.TryLock(ctx, "accrual", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	current()
	assert.False(t, mr.Exists("test:accrual"))
}

func TestRedisUnavailable(t *testing.T) {
	mr, rc := newTestRedis(t)
	l := NewRedis(rc, "test:")
	mr.Close()

	_, ok, err := l.TryLock(context.Background(), "rollup", time.Minute)
	assert.Error(t, err)
	assert.False(t, ok)
}
