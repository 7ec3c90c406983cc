package search

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vhaldran/buzzserve/pkg/match"
)

// resultCache is a bounded FIFO cache keyed by normalized query. It exists
// purely to skip rescanning for repeated queries; results must be observably
// identical with the cache disabled.
type resultCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string][]match.Result
	order    []string
}

func newResultCache(capacity int) *resultCache {
	if capacity <= 0 {
		return nil
	}
	return &resultCache{
		capacity: capacity,
		entries:  make(map[string][]match.Result, capacity),
	}
}

func (c *resultCache) get(key string) ([]match.Result, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	results, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return cloneResults(results), true
}

func (c *resultCache) put(key string, results []match.Result) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = cloneResults(results)
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		log.Debugf("Evicted query %q from result cache", oldest)
	}

	c.entries[key] = cloneResults(results)
	c.order = append(c.order, key)
}

// cloneResults copies the slice header so a caller truncating or reordering
// its view never reaches into the cached one. Result values themselves are
// never mutated after creation.
func cloneResults(results []match.Result) []match.Result {
	out := make([]match.Result, len(results))
	copy(out, results)
	return out
}
