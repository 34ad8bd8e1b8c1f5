package market

import (
	"sync"
	"time"

	"github.com/homepath/deposit-forecast/internal/domain"
)

// DefaultCacheTTL is how long a fetched quote stays fresh
const DefaultCacheTTL = 15 * time.Minute

type cacheEntry struct {
	quote   domain.SymbolQuote
	fetched time.Time
}

// Cache holds per-symbol quotes for a fixed time-to-live. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewCache creates a cache; a ttl of zero or less uses DefaultCacheTTL
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: map[string]cacheEntry{},
		now:     time.Now,
	}
}

// Get returns the cached quote for symbol when present and fresh
func (c *Cache) Get(symbol string) (domain.SymbolQuote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[symbol]
	if !ok || c.now().Sub(e.fetched) > c.ttl {
		return domain.SymbolQuote{}, false
	}
	return e.quote, true
}

// Put stores q for symbol
func (c *Cache) Put(symbol string, q domain.SymbolQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[symbol] = cacheEntry{quote: q, fetched: c.now()}
}

// Purge drops expired entries and returns how many were removed
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for k, e := range c.entries {
		if c.now().Sub(e.fetched) > c.ttl {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries, fresh or not
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
