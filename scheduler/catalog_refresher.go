package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"paddleoffer/cache"
)

// CatalogRefresher refreshes the catalog cache in the background so request
// handling mostly hits a warm snapshot. Requests that do arrive on a cold
// or expired cache still refresh on their own; this only shifts the fetch
// latency off the request path.
type CatalogRefresher struct {
	cron  *cron.Cron
	cache *cache.CatalogCache
	spec  string
}

func NewCatalogRefresher(catalogCache *cache.CatalogCache, spec string) *CatalogRefresher {
	return &CatalogRefresher{
		cron:  cron.New(cron.WithSeconds()),
		cache: catalogCache,
		spec:  spec,
	}
}

// Start schedules periodic refreshes and warms the cache immediately
func (cr *CatalogRefresher) Start() {
	_, err := cr.cron.AddFunc(cr.spec, cr.refresh)
	if err != nil {
		log.Printf("Failed to schedule catalog refresher: %v", err)
		return
	}

	// Also run immediately on startup
	go cr.refresh()

	cr.cron.Start()
	log.Printf("Catalog refresher scheduled (%s)", cr.spec)
}

// Stop stops the scheduled refreshes
func (cr *CatalogRefresher) Stop() {
	if cr.cron != nil {
		cr.cron.Stop()
	}
}

func (cr *CatalogRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := cr.cache.Refresh(ctx); err != nil {
		log.Printf("❌ Scheduled catalog refresh failed: %v", err)
	}
}
