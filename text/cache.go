package text

import (
	"container/list"
	"sync"
)

// Cache is a generic thread-safe LRU cache with a size limit.
// When the cache exceeds its limit, the least recently used entry is evicted.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*list.Element
	order   *list.List // front = most recently used
	limit   int

	hits   uint64
	misses uint64
}

// cacheEntry is the payload stored in each list element.
type cacheEntry[K comparable, V any] struct {
	key   K
	value V
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// NewCache creates a new cache holding at most limit entries.
// A limit of 0 means unlimited.
func NewCache[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*list.Element),
		order:   list.New(),
		limit:   limit,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.getLocked(key)
}

// Set stores a value in the cache.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setLocked(key, value)
}

// GetOrCreate returns the cached value or creates it.
// create is called under lock so concurrent callers never create twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.getLocked(key); ok {
		return v
	}
	v := create()
	c.setLocked(key, v)
	return v
}

// Clear removes all entries from the cache. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*list.Element)
	c.order.Init()
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns a snapshot of hit/miss counters.
func (c *Cache[K, V]) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{Hits: c.hits, Misses: c.misses, Len: len(c.entries)}
}

// Caller must hold c.mu.
func (c *Cache[K, V]) getLocked(key K) (V, bool) {
	el, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry[K, V]).value, true
}

// Caller must hold c.mu.
func (c *Cache[K, V]) setLocked(key K, value V) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	c.entries[key] = c.order.PushFront(&cacheEntry[K, V]{key: key, value: value})

	for c.limit > 0 && len(c.entries) > c.limit {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry[K, V]).key)
	}
}
