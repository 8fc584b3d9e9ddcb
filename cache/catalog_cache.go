package cache

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"paddleoffer/models"
	"paddleoffer/scraper"
)

// ErrNoCatalog is returned when no snapshot exists yet and the refresh
// attempt failed, i.e. there is nothing to fall back to.
var ErrNoCatalog = errors.New("no catalog available")

// snapshot is the unit of replacement: either the whole scrape result goes
// in, or the previous snapshot stays untouched. Populated distinguishes
// "never fetched" from a successful fetch that yielded zero listings.
type snapshot struct {
	listings  []models.Listing
	fetchedAt time.Time
	populated bool
}

// CatalogCache holds the most recent successfully extracted catalog with a
// TTL. Reads take a copy of the snapshot under RLock; refreshes replace it
// wholesale. Concurrent refreshes are collapsed into one upstream fetch
// via singleflight.
type CatalogCache struct {
	source scraper.CatalogSource
	ttl    time.Duration

	mu    sync.RWMutex
	snap  snapshot
	group singleflight.Group
}

// NewCatalogCache creates an empty cache around the given source
func NewCatalogCache(source scraper.CatalogSource, ttl time.Duration) *CatalogCache {
	return &CatalogCache{source: source, ttl: ttl}
}

// GetOrRefresh returns the cached catalog when the snapshot is within its
// TTL, refreshing otherwise. A failed refresh falls back to the stale
// snapshot when one exists, so the API keeps answering through upstream
// flakiness once a single scrape has ever succeeded. Only with no snapshot
// at all does the failure propagate.
func (c *CatalogCache) GetOrRefresh(ctx context.Context) ([]models.Listing, error) {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()

	if snap.populated && time.Since(snap.fetchedAt) < c.ttl {
		return snap.listings, nil
	}

	if err := c.Refresh(ctx); err != nil {
		if snap.populated {
			log.Printf("⚠️  Catalog refresh failed, serving stale snapshot (age %s): %v",
				time.Since(snap.fetchedAt).Round(time.Second), err)
			return snap.listings, nil
		}
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.listings, nil
}

// Refresh fetches and extracts a new catalog and atomically replaces the
// snapshot. Callers arriving while a refresh is already in flight await
// that refresh instead of issuing a duplicate upstream fetch.
func (c *CatalogCache) Refresh(ctx context.Context) error {
	_, err, shared := c.group.Do("catalog", func() (interface{}, error) {
		listings, err := c.source.Listings(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.snap = snapshot{listings: listings, fetchedAt: time.Now(), populated: true}
		c.mu.Unlock()
		log.Printf("✅ Catalog refreshed: %d listings", len(listings))
		return nil, nil
	})
	if shared {
		log.Printf("🔗 Catalog refresh shared with concurrent caller")
	}
	return err
}

// Stats reports the snapshot state for the monitoring endpoints. The
// source URL is deliberately not part of it.
type Stats struct {
	Populated bool      `json:"populated"`
	Listings  int       `json:"listings"`
	FetchedAt time.Time `json:"fetched_at"`
	Age       string    `json:"age"`
	TTL       string    `json:"ttl"`
}

// GetStats returns current cache statistics
func (c *CatalogCache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{
		Populated: c.snap.populated,
		Listings:  len(c.snap.listings),
		TTL:       c.ttl.String(),
	}
	if c.snap.populated {
		stats.FetchedAt = c.snap.fetchedAt
		stats.Age = time.Since(c.snap.fetchedAt).Round(time.Second).String()
	}
	return stats
}
