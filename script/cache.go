package script

import (
	"sync"
)

// Cache maps stored script identifiers to their compiled transforms,
// so that a script is compiled once and not on every application.
type Cache struct {
	sync.RWMutex
	compiled map[uint64]*Transform
}

// NewCache creates a new *Cache object.
func NewCache() *Cache {
	return &Cache{
		compiled: make(map[uint64]*Transform),
	}
}

// Add maps a compiled transform to an identifier, replacing a previous
// entry if there was one.
func (c *Cache) Add(id uint64, t *Transform) {
	c.Lock()
	defer c.Unlock()
	c.compiled[id] = t
}

// Find returns the compiled transform mapped to an identifier, or nil.
func (c *Cache) Find(id uint64) *Transform {
	c.RLock()
	defer c.RUnlock()
	return c.compiled[id]
}

// Del removes the compiled transform mapped to an identifier, if any.
func (c *Cache) Del(id uint64) {
	c.Lock()
	defer c.Unlock()
	delete(c.compiled, id)
}

// Size returns the number of compiled transforms in the cache.
func (c *Cache) Size() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.compiled)
}
