package parser

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"gfg-scraper/models"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// containerClasses are known content wrapper classes, in priority order.
var containerClasses = []string{"post-content", "entry-content", "article-content"}

// Thresholds for the locator heuristics: a list following a heading needs
// minHeaderLinks anchors to count, a standalone list needs minClusterLinks.
const (
	minHeaderLinks  = 3
	minClusterLinks = 5
)

// FindTopicSection locates the element most likely to hold the organized
// topic link lists. Three heuristics are tried in priority order, returning
// on the first success:
//  1. an h2/h3 whose nearest following list holds at least 3 links
//     (returns the heading's parent)
//  2. any list holding at least 5 links (returns the list's parent)
//  3. a known content container class holding at least one link
//
// Returns nil when no heuristic matches; callers treat that as a
// recoverable "no content found" outcome.
func FindTopicSection(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection

	// Headers followed by substantial link lists
	doc.Find("h2, h3").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		list := NextList(doc, heading)
		if list != nil && list.Find("a").Length() >= minHeaderLinks {
			found = heading.Parent()
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	// Significant list clusters
	doc.Find("ul").EachWithBreak(func(_ int, list *goquery.Selection) bool {
		if list.Find("a").Length() >= minClusterLinks {
			found = list.Parent()
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	// Known content container classes
	for _, class := range containerClasses {
		container := doc.Find("div." + class).First()
		if container.Length() > 0 && container.Find("a").Length() > 0 {
			return container
		}
	}

	return nil
}

// CollectSections walks the located container and pairs each h2/h3 heading
// with the anchors of the list following it. Headings shorter than two
// characters are treated as noise and skipped. Hrefs are resolved against
// the base URL; anchors without an href are dropped.
func CollectSections(doc *goquery.Document, container *goquery.Selection, base *url.URL) []models.TopicSection {
	var sections []models.TopicSection

	container.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		title := strings.TrimSpace(heading.Text())
		if utf8.RuneCountInString(title) < 2 {
			return
		}

		section := models.TopicSection{Title: title}
		if list := NextList(doc, heading); list != nil {
			list.Find("li").Each(func(_ int, item *goquery.Selection) {
				link := item.Find("a").First()
				href, ok := link.Attr("href")
				if !ok || href == "" {
					return
				}
				section.Articles = append(section.Articles, models.ArticleLink{
					Title: strings.TrimSpace(link.Text()),
					URL:   resolveHref(base, href),
				})
			})
		}
		sections = append(sections, section)
	})

	return sections
}

// NextList returns the first ul following sel in document order, or nil.
// Document order here means the full pre-order walk, not just siblings, so
// a list nested one level deeper still counts.
func NextList(doc *goquery.Document, sel *goquery.Selection) *goquery.Selection {
	if sel.Length() == 0 {
		return nil
	}
	for n := nextNode(sel.Get(0)); n != nil; n = nextNode(n) {
		if n.Type == html.ElementNode && n.Data == "ul" {
			return doc.FindNodes(n)
		}
	}
	return nil
}

// nextNode advances one step in pre-order document traversal.
func nextNode(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// resolveHref resolves a possibly-relative href against the base URL.
// Unparseable hrefs are passed through unchanged.
func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
