package reconcile

import (
	"context"
	"sync"
	"time"

	"roster-manager/core/schema"

	"golang.org/x/sync/singleflight"
)

// Loader loads the stored records of one schema.
type Loader interface {
	LoadRecords(ctx context.Context, baseName string) ([]schema.Record, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, baseName string) ([]schema.Record, error)

// LoadRecords calls f.
func (f LoaderFunc) LoadRecords(ctx context.Context, baseName string) ([]schema.Record, error) {
	return f(ctx, baseName)
}

// cacheEntry holds the stored records of one schema.
type cacheEntry struct {
	records []schema.Record
	built   time.Time
}

// Cache holds stored records per base name so repeated diffs of the same record type do
// not reload the store. Concurrent misses for one base name share a single load.
type Cache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group
}

// NewCache creates a cache. A zero TTL disables caching; every call loads.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*cacheEntry),
	}
}

func (c *Cache) expired(e *cacheEntry) bool {
	if c.ttl == 0 {
		return true
	}
	return c.now().Sub(e.built) > c.ttl
}

// GetOrLoad returns the cached records for baseName, loading them when missing or expired.
// Callers must not modify the returned records.
func (c *Cache) GetOrLoad(ctx context.Context, baseName string, loader Loader) ([]schema.Record, error) {
	// Fast path: check if entry exists and is fresh
	c.mu.RLock()
	entry, exists := c.entries[baseName]
	c.mu.RUnlock()

	if exists && !c.expired(entry) {
		return entry.records, nil
	}

	// Slow path: load using singleflight to prevent stampedes
	result, err, _ := c.sf.Do(baseName, func() (interface{}, error) {
		c.mu.RLock()
		entry, exists := c.entries[baseName]
		c.mu.RUnlock()

		if exists && !c.expired(entry) {
			return entry.records, nil
		}

		records, err := loader.LoadRecords(ctx, baseName)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[baseName] = &cacheEntry{records: records, built: c.now()}
		c.mu.Unlock()

		return records, nil
	})

	if err != nil {
		return nil, err
	}

	return result.([]schema.Record), nil
}

// Invalidate drops the cached records for baseName.
func (c *Cache) Invalidate(baseName string) {
	c.mu.Lock()
	delete(c.entries, baseName)
	c.mu.Unlock()
}
