package pricing

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/junseok-oh/cloudquote/internal/models"
)

// DefaultCacheTTL is how long a pricing result stays valid.
const DefaultCacheTTL = time.Hour

type cacheEntry struct {
	result   *models.PricingResult
	storedAt time.Time
}

// Cache is an in-memory TTL cache for pricing results, keyed by the
// hash of (service, canonical filter JSON, region). Entries are
// replaced wholesale on refresh and never mutated in place. There is no
// eviction beyond TTL expiry; the process lifetime is expected to be a
// single CLI or tool invocation.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration

	// now is swappable so tests can backdate entries.
	now func() time.Time
}

// NewCache creates a Cache with the given TTL; ttl <= 0 selects
// DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key derives the deterministic cache key for a query. Filter insertion
// order never affects the result.
func (c *Cache) Key(service string, filters []Filter, region string) string {
	h := sha256.New()
	h.Write([]byte(service))
	h.Write([]byte{0})
	h.Write([]byte(canonicalFilterJSON(filters)))
	h.Write([]byte{0})
	h.Write([]byte(region))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached result for a query, or (nil, false) when the
// entry is absent or older than the TTL.
func (c *Cache) Get(service string, filters []Filter, region string) (*models.PricingResult, bool) {
	key := c.Key(service, filters, region)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		return nil, false
	}
	return entry.result, true
}

// Set stores a fresh result for a query.
func (c *Cache) Set(service string, filters []Filter, region string, result *models.PricingResult) {
	key := c.Key(service, filters, region)

	c.mu.Lock()
	c.entries[key] = cacheEntry{result: result, storedAt: c.now()}
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
