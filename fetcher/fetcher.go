package fetcher

import "time"

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch retrieves the raw HTML content of a single page
	Fetch(url string) (string, error)
}

// Options holds the client configuration shared by all fetcher
// implementations. A random delay uniform in [DelayMin, DelayMax] precedes
// every request as polite pacing.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	DelayMin  time.Duration
	DelayMax  time.Duration
}
