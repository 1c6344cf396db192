package writer

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer persists assembled markdown documents under a fixed output directory
type Writer struct {
	outputDir string
}

// NewWriter creates a new Writer instance
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Save joins the fragments with newline separators and writes them as UTF-8
// text, creating the output directory if absent. Returns the written path.
func (w *Writer) Save(fragments []string, filename string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.outputDir, filename)
	content := strings.Join(fragments, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Printf("Content saved to %s\n", path)
	return path, nil
}

// FilenameFromURL derives an output filename from the final non-empty path
// segment of a topic URL, with a ".md" suffix.
func FilenameFromURL(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}

	path = strings.Trim(path, "/")
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	if name == "" {
		name = "index"
	}
	return name + ".md"
}
