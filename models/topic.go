package models

// ArticleLink is one anchor discovered under a section heading
type ArticleLink struct {
	Title string
	URL   string
}

// TopicSection pairs a section heading with the article links found in the
// list following it
type TopicSection struct {
	Title    string
	Articles []ArticleLink
}

// TopicResult summarizes one scraped topic page for the reporting sinks
type TopicResult struct {
	URL           string
	Title         string
	OutputFile    string
	Status        string // "saved" or "failed"
	Sections      int
	Articles      int
	FailedFetches int // article fetches that returned no content
}
