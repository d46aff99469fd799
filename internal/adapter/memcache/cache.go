package memcache

import (
	"sync"

	"github.com/lully/dayplan/internal/domain"
)

const defaultMaxEntries = 64

// Cache is an in-memory plan cache. Keys are day-scoped, so entries for past
// days stop being requested and fall out once the cap is reached.
type Cache struct {
	mu         sync.RWMutex
	maxEntries int
	plans      map[string]domain.Plan
}

func New() *Cache {
	return &Cache{
		maxEntries: defaultMaxEntries,
		plans:      make(map[string]domain.Plan),
	}
}

func (c *Cache) Get(key string) (domain.Plan, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	plan, ok := c.plans[key]
	return plan, ok
}

func (c *Cache) Put(key string, plan domain.Plan) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.plans[key]; !exists && len(c.plans) >= c.maxEntries {
		// Drop an arbitrary entry; regeneration is cheap.
		for k := range c.plans {
			delete(c.plans, k)
			break
		}
	}
	c.plans[key] = plan
}
