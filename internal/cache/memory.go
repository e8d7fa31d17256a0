package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is a process-local Backend bounded by a maximum entry count.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]Entry
	maxEntries int
	evicted    func(key string)
}

// NewMemory constructs a Memory backend. maxEntries <= 0 disables the bound.
func NewMemory(maxEntries int) *Memory {
	return &Memory{
		entries:    make(map[string]Entry),
		maxEntries: maxEntries,
	}
}

func (m *Memory) onEvict(fn func(key string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evicted = fn
}

func (m *Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	return e, ok, nil
}

// Set stores the entry. When the bound is exceeded the oldest other entry is dropped.
func (m *Memory) Set(_ context.Context, key string, entry Entry, _ time.Duration) error {
	m.mu.Lock()
	m.entries[key] = entry
	var victim string
	if m.maxEntries > 0 && len(m.entries) > m.maxEntries {
		victim = m.oldestLocked(key)
		delete(m.entries, victim)
	}
	hook := m.evicted
	m.mu.Unlock()

	if victim != "" && hook != nil {
		hook(victim)
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *Memory) Sweep(_ context.Context, expired func(key string, entry Entry) bool) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := make([]string, 0)
	for key, e := range m.entries {
		if expired(key, e) {
			delete(m.entries, key)
			removed = append(removed, key)
		}
	}
	return removed, nil
}

func (m *Memory) Flush(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]Entry)
	return nil
}

func (m *Memory) Len(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries), nil
}

func (m *Memory) oldestLocked(skip string) string {
	var (
		oldestKey string
		oldestAt  time.Time
	)
	for key, e := range m.entries {
		if key == skip {
			continue
		}
		if oldestKey == "" || e.StoredAt.Before(oldestAt) {
			oldestKey, oldestAt = key, e.StoredAt
		}
	}
	return oldestKey
}
