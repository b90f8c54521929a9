package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryCache implements Cache with an in-memory map bounded by total size
type MemoryCache struct {
	mu          sync.RWMutex
	items       map[string]*memoryItem
	maxBytes    int64
	currentSize int64
	stats       Stats
	stopCh      chan struct{}
	wg          sync.WaitGroup
}

type memoryItem struct {
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates an in-memory cache capped at maxSizeMB and starts
// its expiry janitor. Call Stop to shut the janitor down.
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	mc := &MemoryCache{
		items:    make(map[string]*memoryItem),
		maxBytes: maxSizeMB * 1024 * 1024,
		stopCh:   make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.janitor()

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	item, exists := mc.items[key]
	mc.mu.RUnlock()

	if !exists || time.Now().After(item.expiry) {
		atomic.AddInt64(&mc.stats.Misses, 1)
		return nil, false
	}

	atomic.AddInt64(&mc.stats.Hits, 1)
	return item.value, true
}

// Set stores a value with a TTL
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	size := int64(len(key) + len(value))
	item := &memoryItem{
		value:  value,
		expiry: time.Now().Add(ttl),
		size:   size,
	}

	mc.mu.Lock()
	if old, exists := mc.items[key]; exists {
		mc.currentSize -= old.size
	}
	mc.items[key] = item
	mc.currentSize += size
	if mc.maxBytes > 0 && mc.currentSize > mc.maxBytes {
		mc.evictLocked()
	}
	mc.mu.Unlock()

	atomic.AddInt64(&mc.stats.Sets, 1)
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	if item, exists := mc.items[key]; exists {
		delete(mc.items, key)
		mc.currentSize -= item.size
	}
	mc.mu.Unlock()
	return nil
}

// Clear removes all values from the cache
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	mc.items = make(map[string]*memoryItem)
	mc.currentSize = 0
	mc.mu.Unlock()
	return nil
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() Stats {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	stats := mc.stats
	stats.Size = mc.currentSize
	stats.MaxSize = mc.maxBytes
	return stats
}

// Stop shuts down the expiry janitor
func (mc *MemoryCache) Stop() {
	close(mc.stopCh)
	mc.wg.Wait()
}

func (mc *MemoryCache) janitor() {
	defer mc.wg.Done()
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.removeExpiredLocked()
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}

// removeExpiredLocked drops expired items; caller holds the write lock
func (mc *MemoryCache) removeExpiredLocked() {
	now := time.Now()
	for key, item := range mc.items {
		if now.After(item.expiry) {
			delete(mc.items, key)
			mc.currentSize -= item.size
			atomic.AddInt64(&mc.stats.Evictions, 1)
		}
	}
}

// evictLocked frees space, expired entries first then arbitrary ones;
// caller holds the write lock
func (mc *MemoryCache) evictLocked() {
	mc.removeExpiredLocked()
	for key, item := range mc.items {
		if mc.currentSize <= mc.maxBytes {
			break
		}
		delete(mc.items, key)
		mc.currentSize -= item.size
		atomic.AddInt64(&mc.stats.Evictions, 1)
	}
}
