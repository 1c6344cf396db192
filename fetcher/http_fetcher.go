package fetcher

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

// HTTPFetcher implements the Fetcher interface with a plain net/http
// client: fixed headers, fixed timeout, random delay before each request.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	delayMin  time.Duration
	delayMax  time.Duration
}

// NewHTTPFetcher creates a new HTTPFetcher instance
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: opts.Timeout},
		userAgent: opts.UserAgent,
		delayMin:  opts.DelayMin,
		delayMax:  opts.DelayMax,
	}
}

// Fetch implements the Fetcher interface
func (hf *HTTPFetcher) Fetch(url string) (string, error) {
	hf.delay()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", hf.userAgent)

	resp, err := hf.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

// delay sleeps a random duration within the configured bounds.
func (hf *HTTPFetcher) delay() {
	if hf.delayMax <= 0 {
		return
	}
	d := hf.delayMin
	if span := hf.delayMax - hf.delayMin; span > 0 {
		d += time.Duration(rand.Int63n(int64(span)))
	}
	time.Sleep(d)
}
