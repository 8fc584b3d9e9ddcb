package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"paddleoffer/models"
)

// stubSource is a scripted CatalogSource for cache tests.
type stubSource struct {
	calls    int32
	delay    time.Duration
	listings []models.Listing
	err      error
}

func (s *stubSource) Listings(ctx context.Context) ([]models.Listing, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.listings, nil
}

func (s *stubSource) callCount() int {
	return int(atomic.LoadInt32(&s.calls))
}

var testCatalog = []models.Listing{
	{Name: "Joola Perseus Pro IV", PriceText: "$199.99"},
}

func TestGetOrRefreshPopulatesEmptyCache(t *testing.T) {
	source := &stubSource{listings: testCatalog}
	c := NewCatalogCache(source, 5*time.Minute)

	listings, err := c.GetOrRefresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, testCatalog, listings)
	require.Equal(t, 1, source.callCount())
}

func TestTTLBoundary(t *testing.T) {
	source := &stubSource{listings: testCatalog}
	c := NewCatalogCache(source, 300000*time.Millisecond)

	_, err := c.GetOrRefresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, source.callCount())

	// Just inside the TTL: a hit, no upstream access.
	c.mu.Lock()
	c.snap.fetchedAt = time.Now().Add(-299999 * time.Millisecond)
	c.mu.Unlock()
	_, err = c.GetOrRefresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, source.callCount())

	// Just past the TTL: triggers a refresh.
	c.mu.Lock()
	c.snap.fetchedAt = time.Now().Add(-300001 * time.Millisecond)
	c.mu.Unlock()
	_, err = c.GetOrRefresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, source.callCount())
}

func TestStaleFallbackOnRefreshFailure(t *testing.T) {
	source := &stubSource{listings: testCatalog}
	c := NewCatalogCache(source, time.Minute)

	_, err := c.GetOrRefresh(context.Background())
	require.NoError(t, err)

	// Expire the snapshot, then make the upstream fail.
	c.mu.Lock()
	c.snap.fetchedAt = time.Now().Add(-2 * time.Minute)
	c.mu.Unlock()
	source.err = errors.New("connection reset")

	listings, err := c.GetOrRefresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, testCatalog, listings)
}

func TestFailurePropagatesWithNoSnapshot(t *testing.T) {
	source := &stubSource{err: errors.New("blocked")}
	c := NewCatalogCache(source, time.Minute)

	_, err := c.GetOrRefresh(context.Background())
	require.Error(t, err)
}

func TestEmptyCatalogIsAValidRefresh(t *testing.T) {
	source := &stubSource{listings: []models.Listing{}}
	c := NewCatalogCache(source, time.Minute)

	listings, err := c.GetOrRefresh(context.Background())
	require.NoError(t, err)
	require.Empty(t, listings)
	require.True(t, c.GetStats().Populated)
	require.Equal(t, 1, source.callCount())

	// The empty snapshot is a hit like any other.
	_, err = c.GetOrRefresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, source.callCount())
}

func TestConcurrentRefreshIsSingleFlight(t *testing.T) {
	source := &stubSource{listings: testCatalog, delay: 100 * time.Millisecond}
	c := NewCatalogCache(source, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listings, err := c.GetOrRefresh(context.Background())
			require.NoError(t, err)
			require.Equal(t, testCatalog, listings)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, source.callCount())
}

func TestSnapshotIsReplacedWholesale(t *testing.T) {
	source := &stubSource{listings: testCatalog}
	c := NewCatalogCache(source, time.Minute)

	require.NoError(t, c.Refresh(context.Background()))

	replacement := []models.Listing{
		{Name: "Selkirk Power Air Invikta", PriceText: "$150.00"},
	}
	source.listings = replacement
	require.NoError(t, c.Refresh(context.Background()))

	listings, err := c.GetOrRefresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, replacement, listings)
}
