package scraper

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrUpstream marks fetch failures: network errors, retryable statuses that
// exhausted the retry budget, and terminal non-success statuses.
var ErrUpstream = errors.New("upstream fetch failed")

// browserHeaders imitates a real browser session to reduce the chance of
// bot-blocking responses from the source page.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Accept-Encoding": "gzip",
	"Connection":      "keep-alive",
}

// Fetcher retrieves the source page over HTTP with bounded retries.
// Each attempt carries its own timeout via the underlying client.
type Fetcher struct {
	client      *http.Client
	maxAttempts int
	backoff     time.Duration
}

// NewFetcher creates a fetcher with the given per-attempt timeout, attempt
// budget and base backoff (the wait after attempt n is backoff × n).
func NewFetcher(timeout time.Duration, maxAttempts int, backoff time.Duration) *Fetcher {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Fetcher{
		client:      &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		backoff:     backoff,
	}
}

// Fetch runs the attempt loop: a network error or a 406 / 5xx response is
// retryable and triggers an exponential backoff before the next attempt;
// any other non-success status is terminal. The final attempt's outcome is
// returned as-is with no further wait.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		html, retryable, err := f.attempt(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
		if attempt == f.maxAttempts {
			break
		}

		delay := time.Duration(attempt) * f.backoff
		log.Printf("🔄 Fetch attempt %d/%d failed: %v (retrying in %s)", attempt, f.maxAttempts, err, delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	log.Printf("❌ Fetch failed after %d attempts: %v", f.maxAttempts, lastErr)
	return "", lastErr
}

// attempt performs one GET and classifies the outcome as success,
// retryable failure, or terminal failure.
func (f *Fetcher) attempt(ctx context.Context, url string) (html string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotAcceptable || resp.StatusCode >= 500 {
		return "", true, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", false, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	// Setting Accept-Encoding manually disables the transport's transparent
	// decompression, so unwrap gzip bodies here.
	body := io.Reader(resp.Body)
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, gzErr := gzip.NewReader(resp.Body)
		if gzErr != nil {
			return "", true, fmt.Errorf("%w: %v", ErrUpstream, gzErr)
		}
		defer gz.Close()
		body = gz
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return string(raw), false, nil
}
