package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/adspark/mocks/port/core"
)

// fakeClock is a settable clock for the time provider mock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock(t *testing.T) (*fakeClock, *mockcore.MockTimeProvider) {
	clock := &fakeClock{now: time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)}
	tp := mockcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().RunAndReturn(clock.Now).Maybe()
	return clock, tp
}

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	ctx := context.Background()
	clock, tp := newClock(t)
	l := NewMemoryLimiter(10, time.Minute, tp, logger.NewNoopLogger())

	for i := 1; i <= 10; i++ {
		d, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i)
		assert.Equal(t, 10-i, d.Remaining)
	}

	d, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, clock.Now().Add(time.Minute), d.ResetAt)

	// Other clients have their own window
	d, _ = l.Allow(ctx, "5.6.7.8")
	assert.True(t, d.Allowed)

	// Exactly at the reset time the window still holds
	clock.Advance(time.Minute)
	d, _ = l.Allow(ctx, "1.2.3.4")
	assert.False(t, d.Allowed)

	clock.Advance(time.Millisecond)
	d, _ = l.Allow(ctx, "1.2.3.4")
	assert.True(t, d.Allowed)
	assert.Equal(t, 9, d.Remaining)
}

func TestMemoryLimiter_RejectionsDoNotConsumeBudget(t *testing.T) {
	ctx := context.Background()
	_, tp := newClock(t)
	l := NewMemoryLimiter(1, time.Minute, tp, logger.NewNoopLogger())

	first, _ := l.Allow(ctx, "k")
	require.True(t, first.Allowed)
	for i := 0; i < 5; i++ {
		d, _ := l.Allow(ctx, "k")
		assert.False(t, d.Allowed)
	}

	l.mu.Lock()
	assert.Equal(t, 1, l.windows["k"].count)
	l.mu.Unlock()
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	ctx := context.Background()
	_, tp := newClock(t)
	l := NewMemoryLimiter(50, time.Minute, tp, logger.NewNoopLogger())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, _ := l.Allow(ctx, "shared")
			if d.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestMemoryLimiter_Janitor(t *testing.T) {
	ctx := context.Background()
	clock, tp := newClock(t)
	tp.EXPECT().NewTicker(coreport.Duration(5 * time.Millisecond)).RunAndReturn(func(d coreport.Duration) *time.Ticker {
		return time.NewTicker(time.Duration(d))
	}).Once()
	l := NewMemoryLimiter(10, time.Minute, tp, logger.NewNoopLogger())

	_, _ = l.Allow(ctx, "a")
	_, _ = l.Allow(ctx, "b")
	require.Equal(t, 2, l.size())

	l.StartJanitor(5 * time.Millisecond)
	defer l.Stop()
	clock.Advance(2 * time.Minute)

	assert.Eventually(t, func() bool { return l.size() == 0 }, time.Second, 5*time.Millisecond)
}

func TestRedisLimiter(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	_, tp := newClock(t)
	l := NewRedisLimiter(client, "test:", 3, time.Minute, tp)

	for i := 1; i <= 3; i++ {
		d, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i)
		assert.Equal(t, 3-i, d.Remaining)
	}

	d, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, "3", mustGet(t, mr, "test:1.2.3.4"))
	assert.Equal(t, time.Minute, mr.TTL("test:1.2.3.4"))

	mr.FastForward(time.Minute + time.Second)

	d, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.Remaining)
}

func TestRedisLimiter_BackendDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	_, tp := newClock(t)
	l := NewRedisLimiter(client, "", 3, time.Minute, tp)

	_, err := l.Allow(context.Background(), "k")

	assert.Error(t, err)
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}
