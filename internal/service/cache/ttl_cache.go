package cache

import (
	"context"
	"sync"
	"time"
)

type byteEntry struct {
	value     []byte
	expiresAt int64 // unix nanos, 0 means no expiry
}

// TTLCache is an in-process BytesCache. Expired entries are dropped lazily
// on read.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]byteEntry
}

func NewTTLCache() *TTLCache {
	return &TTLCache{entries: make(map[string]byteEntry)}
}

func (c *TTLCache) GetBytes(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if e.expiresAt != 0 && time.Now().UnixNano() > e.expiresAt {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

func (c *TTLCache) SetBytes(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}
	c.mu.Lock()
	c.entries[key] = byteEntry{value: value, expiresAt: expiresAt}
	c.mu.Unlock()
	return nil
}
