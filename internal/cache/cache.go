// Package cache provides a process-wide TTL store for fetched price
// series. The cache is explicitly constructed and passed to its
// consumers; it is never an ambient singleton.
package cache

import (
	"fmt"
	"sync"
	"time"

	"StockRadar/internal/model"
)

// DefaultTTL is how long a cached series is considered fresh.
const DefaultTTL = 300 * time.Second

type entry struct {
	value    *model.PriceSeries
	storedAt time.Time
}

// Cache is a TTL-keyed store of previously fetched series. Entries are
// replaced whole, never partially mutated; concurrent Set races for the
// same key resolve last-writer-wins, which is acceptable because values
// are idempotent snapshots of the same remote truth. Stale entries are
// not evicted; callers treat them as misses via IsValid.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Key builds the composite cache key for one fetch request.
func Key(ticker, period, interval string) string {
	return fmt.Sprintf("%s-%s-%s", ticker, period, interval)
}

// Get returns the stored series, or nil when absent.
func (c *Cache) Get(key string) *model.PriceSeries {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.entries[key]; ok {
		return e.value
	}
	return nil
}

// Set stores a series under key, replacing any previous entry.
func (c *Cache) Set(key string, value *model.PriceSeries) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
}

// IsValid reports whether key holds an entry younger than ttl.
func (c *Cache) IsValid(key string, ttl time.Duration) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	return c.now().Sub(e.storedAt) < ttl
}

// Clear removes every entry synchronously.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len returns the number of entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
