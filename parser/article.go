package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentElements are the tag kinds walked inside the main article region.
// div participates only when its class list carries the "code" token.
const contentElements = "p, h2, h3, h4, pre, code, ul, ol, div"

// codeBlock accumulates raw text across adjacent code-bearing elements so
// consecutive <pre>/<code> tags merge into a single fence. It is a two-state
// machine: closed, or open with a language tag and buffered chunks.
type codeBlock struct {
	open     bool
	language string
	chunks   []string
}

// add opens the block if it is closed and appends the element's raw text.
// The language is captured only when the block opens; language classes on
// later elements of the same run are ignored.
func (cb *codeBlock) add(language, text string) {
	if !cb.open {
		cb.open = true
		cb.language = language
	}
	if strings.TrimSpace(text) != "" {
		cb.chunks = append(cb.chunks, text)
	}
}

// flush closes an open block and returns the fenced fragment. An open block
// with no buffered text still produces a fence. Returns false when the
// block is already closed.
func (cb *codeBlock) flush() (string, bool) {
	if !cb.open {
		return "", false
	}
	fragment := fmt.Sprintf("\n```%s\n%s\n```\n", cb.language, strings.Join(cb.chunks, ""))
	cb.open = false
	cb.language = ""
	cb.chunks = nil
	return fragment, true
}

// FormatArticle converts a parsed article page into an ordered sequence of
// markdown fragments. Headings shift one level down so level 1 stays
// reserved for the document title. Returns nil when the page has no
// recognizable main content region.
func FormatArticle(doc *goquery.Document) []string {
	main := findMainContent(doc)
	if main == nil {
		return nil
	}

	var fragments []string
	var code codeBlock

	flush := func() {
		if fragment, ok := code.flush(); ok {
			fragments = append(fragments, fragment)
		}
	}

	main.Find(contentElements).Each(func(_ int, el *goquery.Selection) {
		switch name := goquery.NodeName(el); name {
		case "h2", "h3", "h4":
			flush()
			level := int(name[1]-'0') + 1
			fragments = append(fragments, fmt.Sprintf("\n%s %s\n", strings.Repeat("#", level), strings.TrimSpace(el.Text())))

		case "p":
			flush()
			if text := strings.TrimSpace(el.Text()); text != "" {
				fragments = append(fragments, fmt.Sprintf("\n%s\n", text))
			}

		case "pre", "code":
			code.add(detectLanguage(el), el.Text())

		case "div":
			if !el.HasClass("code") {
				return
			}
			code.add(detectLanguage(el), el.Text())

		case "ul", "ol":
			flush()
			var b strings.Builder
			b.WriteString("\n")
			el.Find("li").Each(func(_ int, item *goquery.Selection) {
				b.WriteString("- " + strings.TrimSpace(item.Text()) + "\n")
			})
			fragments = append(fragments, b.String())
		}
	})

	flush()
	return fragments
}

// findMainContent returns the article's main content region: the first
// <article> element, or the first div carrying a known container class.
func findMainContent(doc *goquery.Document) *goquery.Selection {
	if article := doc.Find("article").First(); article.Length() > 0 {
		return article
	}
	selector := "div." + strings.Join(containerClasses, ", div.")
	if container := doc.Find(selector).First(); container.Length() > 0 {
		return container
	}
	return nil
}

// detectLanguage pulls a language tag from a "language-*" class name. Only
// the first matching class counts; additional language classes on the same
// element are ignored.
func detectLanguage(el *goquery.Selection) string {
	for _, class := range strings.Fields(el.AttrOr("class", "")) {
		if strings.Contains(class, "language-") {
			return strings.ReplaceAll(class, "language-", "")
		}
	}
	return ""
}
