package cache

import (
	"context"
	"sync"
	"time"
)

type memItem struct {
	entry   Entry
	expires time.Time // zero means no expiry
}

// MemoryStore is an in-process Store. Expired entries are dropped lazily on
// Get, in bulk by Purge, and periodically while RunJanitor is running.
// Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]memItem
	now   func() time.Time
}

// NewMemoryStore returns a store whose entries live for ttl; ttl ≤ 0 keeps
// them until the process exits.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		items: make(map[string]memItem),
		now:   time.Now,
	}
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, false, err
	}

	m.mu.RLock()
	it, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return Entry{}, false, nil
	}
	if !it.expires.IsZero() && !m.now().Before(it.expires) {
		m.mu.Lock()
		// re-check: a concurrent Set may have refreshed it
		if cur, ok := m.items[key]; ok && cur.expires.Equal(it.expires) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return Entry{}, false, nil
	}

	return it.entry, true, nil
}

// Set implements Store.
func (m *MemoryStore) Set(ctx context.Context, key string, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	it := memItem{entry: e}
	if m.ttl > 0 {
		it.expires = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.items[key] = it
	m.mu.Unlock()

	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Purge removes every expired entry and returns how many were dropped.
func (m *MemoryStore) Purge() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for k, it := range m.items {
		if !it.expires.IsZero() && !now.Before(it.expires) {
			delete(m.items, k)
			n++
		}
	}
	return n
}

// RunJanitor calls Purge every interval until ctx is done. It blocks, so run
// it in its own goroutine. A non-positive interval returns immediately.
func (m *MemoryStore) RunJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Purge()
		}
	}
}
