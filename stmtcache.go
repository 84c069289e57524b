package cqlbind

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// PreparedCache keeps recently prepared statements, keyed by query text.
// Preparing is the session's business; the cache only decides who prepares
// and who reuses. Suppliers borrow the cached *PreparedStatement for the
// duration of an encode call.
type PreparedCache struct {
	cache *lru.Cache[string, *PreparedStatement]
	mu    sync.RWMutex
}

// NewPreparedCache creates a cache holding at most size statements.
func NewPreparedCache(size int) (*PreparedCache, error) {
	cache, err := lru.New[string, *PreparedStatement](size)
	if err != nil {
		return nil, err
	}
	return &PreparedCache{cache: cache}, nil
}

// Get returns the cached statement for query, if any.
func (c *PreparedCache) Get(query string) (*PreparedStatement, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Get(query)
}

// Put stores a prepared statement under its query text.
func (c *PreparedCache) Put(query string, stmt *PreparedStatement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(query, stmt)
}

// GetOrPrepare returns the cached statement for query, preparing and caching
// it via prepare on a miss. Concurrent callers for the same query prepare at
// most once.
func (c *PreparedCache) GetOrPrepare(query string, prepare func(string) (*PreparedStatement, error)) (*PreparedStatement, error) {
	// Fast path under the read lock.
	c.mu.RLock()
	if stmt, ok := c.cache.Get(query); ok {
		c.mu.RUnlock()
		return stmt, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring the write lock.
	if stmt, ok := c.cache.Get(query); ok {
		return stmt, nil
	}

	stmt, err := prepare(query)
	if err != nil {
		return nil, err
	}
	c.cache.Add(query, stmt)
	return stmt, nil
}

// Len returns the number of cached statements.
func (c *PreparedCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Purge drops all cached statements.
func (c *PreparedCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}
