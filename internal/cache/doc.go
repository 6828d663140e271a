// Package cache provides the bounded LRU cache used to memoize resolved
// glyph scripts.
//
//	c := cache.New[string, int](64)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Entries are evicted strictly least-recently-used once the limit is
// reached. Hit and miss counters are kept for Stats.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
