// Package cache stores byte blobs under string keys with optional expiry.
//
// Two stores back the dbg tooling:
//
//   - MemoryCache, a bounded LRU used by the call-site resolver to avoid
//     re-parsing source files on every debug print.
//   - FileCache, a directory of entries under the user cache directory used
//     by the dbg command to reuse formatted documents between runs.
//
// NullCache disables caching. Keys are built by a Keyer, which hashes every
// option that affects the cached value into the key.
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a key/value store for serialized values.
type Cache interface {
	// Get returns the data stored under key. The second result is false on
	// a miss, including an expired entry.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the resources held by the cache.
	Close() error
}

// Key namespaces, the first segment of every key a Keyer builds.
const (
	kindFormat   = "format"
	kindCallsite = "callsite"
)

// keyType returns the namespace of key for hooks, skipping any scope
// prefix a ScopedKeyer added.
func keyType(key string) string {
	first, _, _ := strings.Cut(key, ":")
	for rest := key; ; {
		seg, tail, ok := strings.Cut(rest, ":")
		if seg == kindFormat || seg == kindCallsite {
			return seg
		}
		if !ok {
			return first
		}
		rest = tail
	}
}
