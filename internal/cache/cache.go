// Package cache holds encoded API response bodies for a bounded time.
package cache

import (
	"strings"
	"sync"
	"time"
)

// CachedBody is an encoded response body and its content type.
type CachedBody struct {
	ContentType string
	Body        []byte
}

type entry struct {
	body      *CachedBody
	expiry    time.Time
	insertIdx int64
}

// BodyCache caches encoded portfolio responses so repeated requests skip the
// source fetch and the JSON or PNG encoding. Keys are "method:path".
// A zero TTL disables caching: Set is a no-op and Get always misses.
// Thread-safe with sync.RWMutex.
type BodyCache struct {
	mu         sync.RWMutex
	items      map[string]entry
	ttl        time.Duration
	maxEntries int
	nextIdx    int64
	now        func() time.Time
}

// New creates a BodyCache with the given TTL and max entry count.
func New(ttl time.Duration, maxEntries int) *BodyCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &BodyCache{
		items:      make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// MakeKey builds a cache key from HTTP method and path.
func MakeKey(method, path string) string {
	return method + ":" + path
}

// Enabled reports whether entries are retained at all.
func (c *BodyCache) Enabled() bool {
	return c != nil && c.ttl > 0
}

// Get returns a cached body if found and not expired.
func (c *BodyCache) Get(key string) (*CachedBody, bool) {
	if !c.Enabled() {
		return nil, false
	}

	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().After(e.expiry) {
		// Expired: remove lazily
		c.mu.Lock()
		if e2, ok2 := c.items[key]; ok2 && c.now().After(e2.expiry) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.body, true
}

// Set stores a body. Evicts the oldest entry if at capacity.
func (c *BodyCache) Set(key string, body *CachedBody) {
	if !c.Enabled() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{
		body:      body,
		expiry:    c.now().Add(c.ttl),
		insertIdx: c.nextIdx,
	}
	c.nextIdx++

	if _, exists := c.items[key]; exists {
		c.items[key] = e
		return
	}

	if len(c.items) >= c.maxEntries {
		c.evictOldest()
	}

	c.items[key] = e
}

// Len returns the number of stored entries, expired ones included.
func (c *BodyCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// InvalidatePrefix removes all entries whose path starts with prefix.
func (c *BodyCache) InvalidatePrefix(prefix string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		_, path, _ := strings.Cut(key, ":")
		if strings.HasPrefix(path, prefix) {
			delete(c.items, key)
		}
	}
}

// evictOldest removes the entry with the lowest insertIdx. Must be called with mu held.
func (c *BodyCache) evictOldest() {
	var oldestKey string
	var oldestIdx int64 = -1

	for key, e := range c.items {
		if oldestIdx == -1 || e.insertIdx < oldestIdx {
			oldestIdx = e.insertIdx
			oldestKey = key
		}
	}

	if oldestIdx != -1 {
		delete(c.items, oldestKey)
	}
}
