package fetcher

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dhkim-dev/boardwatch/internal/board"
	"github.com/dhkim-dev/boardwatch/internal/metrics"
)

// DefaultTTL bounds how long a cached page is served without refetching.
const DefaultTTL = 5 * time.Minute

// Getter retrieves page content from the network.
type Getter interface {
	Get(ctx context.Context, rawURL string) (string, error)
}

// Entry is one cached page. Entries are never evicted by age; a stale
// entry simply loses to a fresh network fetch on the next cached read
// and is overwritten in place.
type Entry struct {
	URL       string
	Content   string
	FetchedAt time.Time
}

// Cache is a time-bounded page cache keyed by the raw request URL.
//
// The mutex guards only the map; network fetches run outside it, so
// concurrent misses for one key each fetch independently and the last
// write wins. Correctness does not depend on single-flight semantics.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry

	ttl    time.Duration
	client Getter
	clock  board.Clock
	log    *zap.Logger
}

// NewCache builds a Cache over the given network client.
// A zero ttl falls back to DefaultTTL.
func NewCache(client Getter, clock board.Clock, ttl time.Duration, log *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		client:  client,
		clock:   clock,
		log:     log,
	}
}

// Fetch returns the page content for rawURL.
//
// With useCache true, a fresh entry is returned without network activity.
// Otherwise the page is fetched, and on success the entry is written or
// replaced. A forced fetch (useCache false) still warms the cache for
// subsequent cached reads.
func (c *Cache) Fetch(ctx context.Context, rawURL string, useCache bool) (string, error) {
	now := c.clock.Now()
	if useCache {
		c.mu.Lock()
		entry, ok := c.entries[rawURL]
		c.mu.Unlock()
		if ok && now.Sub(entry.FetchedAt) < c.ttl {
			metrics.RecordCacheHit()
			c.log.Debug("cache hit", zap.String("url", rawURL), zap.Time("fetched_at", entry.FetchedAt))
			return entry.Content, nil
		}
	}
	metrics.RecordCacheMiss()

	content, err := c.client.Get(ctx, rawURL)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.entries[rawURL] = Entry{URL: rawURL, Content: content, FetchedAt: c.clock.Now()}
	c.mu.Unlock()
	c.log.Debug("cache store", zap.String("url", rawURL), zap.Int("bytes", len(content)))
	return content, nil
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.mu.Unlock()
}

// Stats reports the entry count and cached keys, for observability only.
func (c *Cache) Stats() board.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return board.CacheStats{Entries: len(c.entries), Keys: keys}
}
