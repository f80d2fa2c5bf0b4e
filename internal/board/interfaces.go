package board

import (
	"context"
	"time"
)

// PageFetcher retrieves page content for a URL, consulting a cache when
// useCache is true. Implementations report failures as *FetchError.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string, useCache bool) (string, error)
	Clear()
	Stats() CacheStats
}

// CacheStats is an observability snapshot of the page cache.
type CacheStats struct {
	Entries int      `json:"entries"`
	Keys    []string `json:"keys"`
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}
