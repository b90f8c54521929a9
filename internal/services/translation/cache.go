package translation

import (
	"sync"
	"time"
)

// Cache is a bounded in-memory TTL cache for resolved translations, keyed
// by the trimmed input text. Same-key overwrites are idempotent (the same
// input always resolves to the same translation) so readers never need to
// coordinate with writers beyond the mutex.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	maxEntries int
	ttl        time.Duration
}

type cacheEntry struct {
	translated string
	source     string
	expiry     time.Time
}

// NewCache creates a translation cache holding at most maxEntries items,
// each expiring after ttl.
func NewCache(maxEntries int, ttl time.Duration) *Cache {
	if maxEntries <= 0 {
		maxEntries = 10000
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache{
		entries:    make(map[string]cacheEntry),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

// Get returns the cached translation and the tier that produced it
func (c *Cache) Get(text string) (translated, source string, ok bool) {
	c.mu.RLock()
	entry, exists := c.entries[text]
	c.mu.RUnlock()

	if !exists {
		return "", "", false
	}
	if time.Now().After(entry.expiry) {
		c.mu.Lock()
		delete(c.entries, text)
		c.mu.Unlock()
		return "", "", false
	}
	return entry.translated, entry.source, true
}

// Set stores a resolved translation
func (c *Cache) Set(text, translated, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}

	c.entries[text] = cacheEntry{
		translated: translated,
		source:     source,
		expiry:     time.Now().Add(c.ttl),
	}
}

// Len returns the number of cached entries, expired or not
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictLocked drops expired entries first, then arbitrary ones until the
// map is under the bound. Caller must hold the write lock.
func (c *Cache) evictLocked() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiry) {
			delete(c.entries, key)
		}
	}
	for key := range c.entries {
		if len(c.entries) < c.maxEntries {
			break
		}
		delete(c.entries, key)
	}
}
