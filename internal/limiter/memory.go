package limiter

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// Memory is a process-local fixed-window limiter.
//
// A window starts with the first request of a key and lasts Settings.Window.
// The first request after it ends opens a fresh window with a zero count;
// expired windows that receive no traffic stay in memory until Sweep runs.
type Memory struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	windows map[string]*window
	now     func() time.Time
}

func NewMemory(settings Settings) (*Memory, error) {
	settings = settings.withDefaults()
	if err := settings.validate(); err != nil {
		return nil, err
	}
	return &Memory{
		limit:   settings.Limit,
		period:  settings.Window,
		windows: make(map[string]*window),
		now:     time.Now,
	}, nil
}

func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[key]
	if !ok || !now.Before(w.start.Add(m.period)) {
		w = &window{start: now}
		m.windows[key] = w
	}
	if w.count >= m.limit {
		return false, nil
	}
	w.count++
	return true, nil
}

// Sweep drops every window that has ended and returns how many were removed.
func (m *Memory) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for key, w := range m.windows {
		if !now.Before(w.start.Add(m.period)) {
			delete(m.windows, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.windows)
}
