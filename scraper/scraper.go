package scraper

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"gfg-scraper/fetcher"
	"gfg-scraper/models"
	"gfg-scraper/parser"

	"github.com/PuerkitoBio/goquery"
)

// Scraper walks one topic page and its linked articles, assembling a single
// flat markdown document per topic. All fetching goes through the injected
// Fetcher; a failed article fetch is logged and skipped, never fatal.
type Scraper struct {
	fetcher fetcher.Fetcher
	baseURL *url.URL
}

// NewScraper creates a new Scraper instance. baseURL anchors relative
// article hrefs.
func NewScraper(f fetcher.Fetcher, baseURL string) (*Scraper, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	return &Scraper{fetcher: f, baseURL: base}, nil
}

// ScrapeTopic fetches a topic page, locates its section structure, and
// scrapes every linked article. The returned fragments form the complete
// markdown document in order: title, then per section a heading followed by
// per-article sub-heading, body, and a horizontal rule. The TopicResult
// carries counters for the reporting sinks.
func (s *Scraper) ScrapeTopic(topicURL string) ([]string, *models.TopicResult, error) {
	log.Printf("Fetching main page: %s\n", topicURL)
	html, err := s.fetcher.Fetch(topicURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch topic page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse topic page: %w", err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = "Untitled"
	}

	container := parser.FindTopicSection(doc)
	if container == nil {
		return nil, nil, fmt.Errorf("no topic section found in %s", topicURL)
	}

	sections := parser.CollectSections(doc, container, s.baseURL)

	result := &models.TopicResult{
		URL:      topicURL,
		Title:    title,
		Sections: len(sections),
	}

	fragments := []string{fmt.Sprintf("# %s\n", title)}

	for _, section := range sections {
		log.Printf("Processing section: %s\n", section.Title)
		fragments = append(fragments, fmt.Sprintf("\n## %s\n", section.Title))

		for _, article := range section.Articles {
			log.Printf("Scraping: %s - %s\n", article.Title, article.URL)
			fragments = append(fragments, fmt.Sprintf("\n### %s\n", article.Title))
			result.Articles++

			body, err := s.scrapeArticle(article.URL)
			if err != nil {
				log.Printf("Skipping article %s: %v\n", article.URL, err)
				result.FailedFetches++
			} else if body != "" {
				fragments = append(fragments, body)
			}

			fragments = append(fragments, "\n---\n")
		}
	}

	return fragments, result, nil
}

// scrapeArticle fetches one article page and renders its body. An article
// with no recognizable content region yields an empty string, not an error.
func (s *Scraper) scrapeArticle(articleURL string) (string, error) {
	html, err := s.fetcher.Fetch(articleURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse article: %w", err)
	}

	fragments := parser.FormatArticle(doc)
	if len(fragments) == 0 {
		return "", nil
	}
	return strings.Join(fragments, "\n"), nil
}
