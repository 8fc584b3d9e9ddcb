package scraper

import (
	"context"

	"paddleoffer/models"
)

// CatalogSource produces the current upstream catalog. The scraping
// heuristics live behind this interface so an alternate page layout or an
// entirely different upstream can be swapped in without touching the
// cache, matcher or engine.
type CatalogSource interface {
	Listings(ctx context.Context) ([]models.Listing, error)
}

// HTTPCatalogSource fetches the configured source page and extracts
// listings from its markup.
type HTTPCatalogSource struct {
	fetcher *Fetcher
	url     string
}

// NewHTTPCatalogSource creates a catalog source backed by Fetcher+Extractor
func NewHTTPCatalogSource(fetcher *Fetcher, url string) *HTTPCatalogSource {
	return &HTTPCatalogSource{fetcher: fetcher, url: url}
}

// Listings fetches and extracts the catalog. A fetch that succeeds but
// yields zero listings is a valid (if unhelpful) result, not an error.
func (s *HTTPCatalogSource) Listings(ctx context.Context) ([]models.Listing, error) {
	rawHTML, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return ExtractListings(rawHTML)
}
