package cache

import (
	"context"
	"time"

	"github.com/George-Ogden/dbg/pkg/observability"
)

// NullCache stores nothing. Every lookup is reported as a miss so hooks see
// the same traffic with caching on or off (dbg fmt --no-cache).
type NullCache struct{}

// NewNullCache returns a cache that never hits.
func NewNullCache() *NullCache { return &NullCache{} }

func (*NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	observability.Cache().OnCacheMiss(ctx, keyType(key))
	return nil, false, nil
}

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
