// Package cache provides the generic LRU cache used for glyph metric and
// kerning lookups.
//
//	c := cache.New[rune, Glyph](512)
//	c.Set('a', g)
//	g, ok := c.Get('a')
//
// Get and GetOrCreate refresh the recency of an entry; when Set pushes the
// cache over its capacity the least recently used entry is evicted.
//
// A Cache is safe for concurrent use and must not be copied after creation.
package cache
