package trampoline

// cacheKey is the triple (child matcher identity, child state, iter)
// that identifies a sub-parse attempt. Including State in the key
// (not just matcher+iter) is what keeps repeated re-entries into a
// backtracking matcher — which advance its own state between
// attempts — distinct: see the cache key soundness property.
type cacheKey struct {
	matcher MatcherID
	state   State
	iter    Iter
}

// Cache deduplicates identical child sub-parses at the same cursor
// for the duration of a single parse call. It stores whole outcome
// Messages (Success or Failure), never partial state, so replaying a
// hit is indistinguishable from the original dispatch.
type Cache struct {
	entries map[cacheKey]Message
}

func newCache() *Cache {
	return &Cache{entries: make(map[cacheKey]Message)}
}

func (c *Cache) get(k cacheKey) (Message, bool) {
	m, ok := c.entries[k]
	return m, ok
}

func (c *Cache) put(k cacheKey, m Message) {
	c.entries[k] = m
}
