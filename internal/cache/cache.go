package cache

import (
	"sync"
	"time"
)

type entry struct {
	payload []byte
	exp     time.Time
}

// Cache holds raw content-store results keyed by query. A zero TTL disables it.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.exp) {
		return nil, false
	}
	return e.payload, true
}

func (c *Cache) Set(key string, payload []byte) {
	if c == nil || c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{payload: payload, exp: c.now().Add(c.ttl)}
}

func (c *Cache) Invalidate(key string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len counts entries that have not expired yet.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	now := c.now()
	for _, e := range c.entries {
		if !now.After(e.exp) {
			n++
		}
	}
	return n
}
