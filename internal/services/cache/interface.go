package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with per-entry TTLs, used for HTTP
// response caching
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Stats provides statistics about cache usage
type Stats struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Evictions int64
	Size      int64
	MaxSize   int64
}

// StatsProvider is implemented by caches that track usage statistics
type StatsProvider interface {
	Stats() Stats
}
