package marketdata

import (
	"sync"
	"time"
)

// Cache is a keyed TTL cache for fetched quotes and computed results.
// State lives here explicitly rather than in the pricing engine, which
// stays pure.
type Cache[T any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry[T]
}

type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		entries: make(map[string]cacheEntry[T]),
	}
}

func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.entries[key]
	if !found || time.Now().After(entry.expiresAt) {
		var zero T
		return zero, false
	}

	return entry.value, true
}

func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry[T]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// GetOrFetch returns the cached value or runs fetch and stores the
// result. Concurrent callers may fetch the same key; last write wins.
func (c *Cache[T]) GetOrFetch(key string, fetch func() (T, error)) (T, error) {
	if value, found := c.Get(key); found {
		return value, nil
	}

	value, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}

	c.Set(key, value)

	return value, nil
}

func (c *Cache[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry[T])
}
