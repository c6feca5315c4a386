package cache

import "time"

// SetClock replaces the store's time source.
func (m *MemoryStore) SetClock(now func() time.Time) { m.now = now }
