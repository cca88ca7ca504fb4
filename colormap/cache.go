package colormap

import (
	"slices"
	"sync"
)

// DefaultCacheLimit is the soft limit used by NewLUTCache for limit <= 0.
const DefaultCacheLimit = 64

// LUTCache shares built LUTs between renders.
//
// Entries are keyed by map identity and size; maps are immutable, so a
// cached table never goes stale. When the cache grows past its soft limit
// the least recently used entries are evicted down to three quarters of the
// limit.
//
// LUTCache is safe for concurrent use and must not be copied.
type LUTCache struct {
	mu        sync.Mutex
	entries   map[lutKey]*lutEntry
	softLimit int
	tick      int64

	hits, misses, evictions uint64
}

type lutKey struct {
	m    *Map
	size int
}

type lutEntry struct {
	lut   *LUT
	atime int64
}

// CacheStats reports LUTCache counters.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// NewLUTCache creates a cache holding about softLimit tables.
func NewLUTCache(softLimit int) *LUTCache {
	if softLimit <= 0 {
		softLimit = DefaultCacheLimit
	}
	return &LUTCache{
		entries:   make(map[lutKey]*lutEntry),
		softLimit: softLimit,
	}
}

// Get returns the LUT of m with size entries, building it on a miss.
// A size <= 1 means DefaultLUTSize.
func (c *LUTCache) Get(m *Map, size int) *LUT {
	if size <= 1 {
		size = DefaultLUTSize
	}
	key := lutKey{m: m, size: size}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		c.hits++
		return e.lut
	}

	c.misses++
	lut := BuildLUT(m.At, size)
	c.entries[key] = &lutEntry{lut: lut, atime: c.tick}
	if len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return lut
}

// Len returns the number of cached tables.
func (c *LUTCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every table. Counters are kept.
func (c *LUTCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[lutKey]*lutEntry)
}

// Stats returns a snapshot of the cache counters.
func (c *LUTCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := CacheStats{
		Len:       len(c.entries),
		Capacity:  c.softLimit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// evictOldest removes least recently used entries until the cache is at
// three quarters of its soft limit. Caller must hold c.mu.
func (c *LUTCache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   lutKey
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.atime < b.atime:
			return -1
		case a.atime > b.atime:
			return 1
		}
		return 0
	})
	for _, e := range all[:toEvict] {
		delete(c.entries, e.key)
		c.evictions++
	}
}
