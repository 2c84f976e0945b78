package cache

import (
	"sync"
	"time"

	"github.com/epeers/registry-warnings/internal/models"
)

// StatusCache is an in-memory TTL cache of business status snapshots
type StatusCache struct {
	entries map[string]statusEntry
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
}

type statusEntry struct {
	status    models.BusinessEntityStatus
	fetchedAt time.Time
}

// NewStatusCache creates a new StatusCache. A non-positive ttl disables caching.
func NewStatusCache(ttl time.Duration) *StatusCache {
	return &StatusCache{
		entries: make(map[string]statusEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retrieves a cached status if fresh
func (c *StatusCache) Get(identifier string) (models.BusinessEntityStatus, bool) {
	if c.ttl <= 0 {
		return models.BusinessEntityStatus{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[identifier]
	if !exists || c.now().Sub(entry.fetchedAt) > c.ttl {
		return models.BusinessEntityStatus{}, false
	}
	return entry.status, true
}

// Set caches a status snapshot
func (c *StatusCache) Set(status models.BusinessEntityStatus) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[status.Identifier] = statusEntry{
		status:    status,
		fetchedAt: c.now(),
	}
}

// Invalidate removes a status from the cache
func (c *StatusCache) Invalidate(identifier string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, identifier)
}

// Clear removes all cached data
func (c *StatusCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]statusEntry)
	c.mu.Unlock()
}
