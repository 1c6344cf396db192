package fetcher

import (
	"fmt"
	"log"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
	lastBody  string
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher(opts Options) *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent(opts.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(opts.Timeout)

	// One request at a time with a random pre-request delay.
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       opts.DelayMin,
		RandomDelay: opts.DelayMax - opts.DelayMin,
	})

	c.OnError(func(r *colly.Response, err error) {
		log.Printf("Error fetching %s: %v\n", r.Request.URL, err)
	})

	cf := &CollyFetcher{collector: c}

	c.OnResponse(func(r *colly.Response) {
		cf.lastBody = string(r.Body)
	})

	return cf
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(url string) (string, error) {
	cf.lastBody = ""

	if err := cf.collector.Visit(url); err != nil {
		return "", fmt.Errorf("failed to visit URL: %w", err)
	}
	cf.collector.Wait()

	if cf.lastBody == "" {
		return "", fmt.Errorf("empty response from %s", url)
	}
	return cf.lastBody, nil
}
