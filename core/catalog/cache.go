package catalog

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache serves records from a Store, keeping each decoded record for a TTL.
// Concurrent misses on the same record share a single read.
type Cache struct {
	store   *Store
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group
}

type cacheEntry struct {
	value any
	built time.Time
}

// NewCache wraps store. A zero ttl disables caching.
func NewCache(store *Store, ttl time.Duration) *Cache {
	return &Cache{
		store:   store,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Store returns the underlying store.
func (c *Cache) Store() *Store {
	return c.store
}

// Local returns the local catalog.
func (c *Cache) Local() (*LocalCatalog, error) {
	v, err := c.getOrLoad(c.store.LocalPath(), func() (any, error) {
		return c.store.ReadLocal()
	})
	if err != nil {
		return nil, err
	}
	return v.(*LocalCatalog), nil
}

// Remote returns the remote catalog for an optional bag filter.
func (c *Cache) Remote(bagFilter string) (*RemoteCatalog, error) {
	v, err := c.getOrLoad(c.store.RemotePath(bagFilter), func() (any, error) {
		return c.store.ReadRemote(bagFilter)
	})
	if err != nil {
		return nil, err
	}
	return v.(*RemoteCatalog), nil
}

// Diff returns the diff report for an optional bag filter.
func (c *Cache) Diff(bagFilter string) (*DiffReport, error) {
	v, err := c.getOrLoad(c.store.DiffPath(bagFilter), func() (any, error) {
		return c.store.ReadDiff(bagFilter)
	})
	if err != nil {
		return nil, err
	}
	return v.(*DiffReport), nil
}

// Invalidate drops every cached record.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

func (c *Cache) fresh(e cacheEntry) bool {
	return c.ttl > 0 && time.Since(e.built) <= c.ttl
}

// getOrLoad returns the cached value for key or loads it. Errors are never
// cached.
func (c *Cache) getOrLoad(key string, load func() (any, error)) (any, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.fresh(entry) {
		return entry.value, nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && c.fresh(entry) {
			return entry.value, nil
		}

		value, err := load()
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = cacheEntry{value: value, built: time.Now()}
			c.mu.Unlock()
		}
		return value, nil
	})
	return v, err
}
