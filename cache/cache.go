package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a typed, cost-bounded cache keyed by string.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// Stats is a snapshot of cache activity for the health endpoint.
type Stats struct {
	Name        string  `json:"name"`
	Hits        uint64  `json:"hits"`
	Misses      uint64  `json:"misses"`
	HitRate     float64 `json:"hit_rate"`
	KeysAdded   uint64  `json:"keys_added"`
	KeysEvicted uint64  `json:"keys_evicted"`
	SetsDropped uint64  `json:"sets_dropped"`
	CostUsedKB  float64 `json:"cost_used_kb"`
}

// New creates a cache bounded by maxCost, where costFunc prices each value
// and ttl is the default lifetime of an entry.
func New[T any](name string, maxCost int64, ttl time.Duration, costFunc func(T) int64) (*Cache[T], error) {
	counters := maxCost / 1024 * 10 // ~10x the expected item count at 1KB/item
	if counters < 100 {
		counters = 100
	}
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: counters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{impl: impl, name: name, ttl: ttl}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the cache's default TTL. A cost of 0 lets the
// cost function price the value.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.impl.SetWithTTL(key, value, cost, c.ttl)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's background goroutines.
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns current cache metrics.
func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics

	hitRate := 0.0
	if total := m.Hits() + m.Misses(); total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}

	return Stats{
		Name:        c.name,
		Hits:        m.Hits(),
		Misses:      m.Misses(),
		HitRate:     hitRate,
		KeysAdded:   m.KeysAdded(),
		KeysEvicted: m.KeysEvicted(),
		SetsDropped: m.SetsDropped(),
		CostUsedKB:  float64(m.CostAdded()-m.CostEvicted()) / 1024,
	}
}
