package limiter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestMemory(t *testing.T, limit int, window time.Duration) (*Memory, *clock) {
	t.Helper()
	m, err := NewMemory(Settings{Limit: limit, Window: window})
	require.NoError(t, err)
	c := &clock{now: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)}
	m.now = c.Now
	return m, c
}

func allowN(t *testing.T, l Limiter, key string, n int) int {
	t.Helper()
	allowed := 0
	for range n {
		ok, err := l.Allow(context.Background(), key)
		require.NoError(t, err)
		if ok {
			allowed++
		}
	}
	return allowed
}

func TestMemory_LimitsWithinWindow(t *testing.T) {
	m, _ := newTestMemory(t, 3, time.Minute)

	assert.Equal(t, 3, allowN(t, m, "10.0.0.1", 5))
	assert.Equal(t, 3, allowN(t, m, "10.0.0.2", 3), "keys are counted separately")
}

func TestMemory_WindowResets(t *testing.T) {
	m, c := newTestMemory(t, 2, time.Minute)

	assert.Equal(t, 2, allowN(t, m, "ip", 3))

	c.Advance(59 * time.Second)
	assert.Equal(t, 0, allowN(t, m, "ip", 1))

	c.Advance(time.Second)
	assert.Equal(t, 2, allowN(t, m, "ip", 3))
}

func TestMemory_Defaults(t *testing.T) {
	m, err := NewMemory(Settings{})
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, m.limit)
	assert.Equal(t, DefaultWindow, m.period)

	_, err = NewMemory(Settings{Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestMemory_SweepDropsExpired(t *testing.T) {
	m, c := newTestMemory(t, 5, time.Minute)

	allowN(t, m, "old", 1)
	c.Advance(30 * time.Second)
	allowN(t, m, "fresh", 1)
	c.Advance(30 * time.Second)

	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 0, m.Sweep())
}

func TestMemory_ConcurrentAllow(t *testing.T) {
	m, _ := newTestMemory(t, 50, time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				ok, _ := m.Allow(context.Background(), "shared")
				if ok {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
