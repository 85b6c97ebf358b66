package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dubiqo_quotes/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLock(t *testing.T) (*RedisSubmissionLock, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSubmissionLock(client), mr
}

func exerciseLock(t *testing.T, l interfaces.ISubmissionLock) {
	ctx := context.Background()

	token, ok, err := l.Acquire(ctx, "asha@example.com", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	_, ok, err = l.Acquire(ctx, "asha@example.com", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while held")

	_, ok, err = l.Acquire(ctx, "ravi@example.com", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "other keys are independent")

	require.NoError(t, l.Release(ctx, "asha@example.com", "someone-else"))
	_, ok, err = l.Acquire(ctx, "asha@example.com", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "a foreign token must not free the key")

	require.NoError(t, l.Release(ctx, "asha@example.com", token))
	_, ok, err = l.Acquire(ctx, "asha@example.com", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// releasing a key nobody holds is fine
	assert.NoError(t, l.Release(ctx, "nobody@example.com", "tok"))
}

func TestRedisSubmissionLock(t *testing.T) {
	l, mr := newRedisLock(t)
	exerciseLock(t, l)
	assert.True(t, mr.Exists(keyPrefix+"asha@example.com"))
}

func TestRedisSubmissionLock_Expires(t *testing.T) {
	l, mr := newRedisLock(t)
	ctx := context.Background()

	_, ok, err := l.Acquire(ctx, "k", 30*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(31 * time.Second)

	_, ok, err = l.Acquire(ctx, "k", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisSubmissionLock_StaleHolderCannotReleaseNewHolder(t *testing.T) {
	l, mr := newRedisLock(t)
	ctx := context.Background()

	first, ok, err := l.Acquire(ctx, "k", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	second, ok, err := l.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, l.Release(ctx, "k", first))
	_, ok, err = l.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "the expired holder freed the current holder's key")

	v, err := mr.Get(keyPrefix + "k")
	require.NoError(t, err)
	assert.Equal(t, second, v)

	require.NoError(t, l.Release(ctx, "k", second))
	assert.False(t, mr.Exists(keyPrefix+"k"))
}

func TestRedisSubmissionLock_ServerDown(t *testing.T) {
	l, mr := newRedisLock(t)
	mr.Close()

	_, _, err := l.Acquire(context.Background(), "k", time.Second)
	assert.Error(t, err)
}

func TestMemorySubmissionLock(t *testing.T) {
	exerciseLock(t, NewMemorySubmissionLock())
}

func TestMemorySubmissionLock_Expires(t *testing.T) {
	l := NewMemorySubmissionLock()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.nowFunc = func() time.Time { return now }

	_, ok, _ := l.Acquire(context.Background(), "k", time.Minute)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, _ = l.Acquire(context.Background(), "k", time.Minute)
	assert.True(t, ok)
}

func TestMemorySubmissionLock_StaleHolderCannotReleaseNewHolder(t *testing.T) {
	l := NewMemorySubmissionLock()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.nowFunc = func() time.Time { return now }
	ctx := context.Background()

	first, ok, _ := l.Acquire(ctx, "k", time.Second)
	require.True(t, ok)

	now = now.Add(2 * time.Second)
	second, ok, _ := l.Acquire(ctx, "k", time.Minute)
	require.True(t, ok)

	require.NoError(t, l.Release(ctx, "k", first))
	_, ok, _ = l.Acquire(ctx, "k", time.Minute)
	assert.False(t, ok)

	require.NoError(t, l.Release(ctx, "k", second))
	_, ok, _ = l.Acquire(ctx, "k", time.Minute)
	assert.True(t, ok)
}

func TestMemorySubmissionLock_Concurrent(t *testing.T) {
	l := NewMemorySubmissionLock()
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok, _ := l.Acquire(context.Background(), "same", time.Minute); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}
