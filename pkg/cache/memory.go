package cache

import (
	"context"
	"time"

	"github.com/tidwall/tinylru"

	"github.com/George-Ogden/dbg/pkg/observability"
)

// DefaultMemorySize is the number of entries a MemoryCache holds when no
// size is given.
const DefaultMemorySize = 256

// MemoryCache is an in-process cache that evicts the least recently used
// entry once full. It is safe for concurrent use.
type MemoryCache struct {
	lru tinylru.LRU
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates a cache holding at most size entries. A size of
// zero or less uses DefaultMemorySize.
func NewMemoryCache(size int) *MemoryCache {
	if size <= 0 {
		size = DefaultMemorySize
	}
	c := &MemoryCache{}
	c.lru.Resize(size)
	return c
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := c.lru.Get(key)
	if ok {
		entry := v.(memoryEntry)
		if entry.expiresAt.IsZero() || time.Now().Before(entry.expiresAt) {
			observability.Cache().OnCacheHit(ctx, keyType(key))
			return entry.data, true, nil
		}
		c.lru.Delete(key)
	}
	observability.Cache().OnCacheMiss(ctx, keyType(key))
	return nil, false, nil
}

// Set stores a value in the cache, evicting the oldest entry if full.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.lru.Set(key, entry)
	observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.lru.Delete(key)
	return nil
}

// Len returns the number of entries held, including expired ones not yet
// evicted.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

// Close does nothing for memory cache.
func (c *MemoryCache) Close() error {
	return nil
}

var _ Cache = (*MemoryCache)(nil)
