// Package ingest turns a source reference (URL, RSS feed, PDF, text
// file, or raw text) into article content ready for analysis and
// prompt synthesis.
package ingest

import (
	"context"
	"fmt"
	"os"
	"strings"
)

type SourceType string

const (
	SourceURL  SourceType = "url"
	SourceRSS  SourceType = "rss"
	SourcePDF  SourceType = "pdf"
	SourceFile SourceType = "file"
	SourceText SourceType = "text"

	// maxInputSize is the maximum allowed size for input content (25 MB).
	maxInputSize = 25 * 1024 * 1024
)

func (s SourceType) String() string {
	return string(s)
}

// Link is a hyperlink found in the source content, kept so generated
// posts can reference what the article referenced.
type Link struct {
	Text string
	URL  string
}

type Content struct {
	Text      string
	Title     string
	Source    string
	WordCount int
	Links     []Link
}

type Ingester interface {
	Ingest(ctx context.Context, source string) (*Content, error)
}

// DetectSource classifies an input string. URLs whose path looks like
// a feed are treated as RSS; a non-URL input that names an existing
// file is read from disk, anything else is taken as literal text.
func DetectSource(input string) SourceType {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		if looksLikeFeed(input) {
			return SourceRSS
		}
		return SourceURL
	}
	if strings.HasSuffix(strings.ToLower(input), ".pdf") {
		return SourcePDF
	}
	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		return SourceFile
	}
	return SourceText
}

func looksLikeFeed(rawURL string) bool {
	u := strings.ToLower(rawURL)
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i]
	}
	u = strings.TrimSuffix(u, "/")
	for _, suffix := range []string{".rss", ".atom", "/feed", "/rss", "feed.xml", "rss.xml", "atom.xml", "index.xml"} {
		if strings.HasSuffix(u, suffix) {
			return true
		}
	}
	return false
}

func NewIngester(input string) Ingester {
	switch DetectSource(input) {
	case SourceRSS:
		return &RSSIngester{}
	case SourceURL:
		return &URLIngester{}
	case SourcePDF:
		return &PDFIngester{}
	case SourceFile:
		return &FileIngester{}
	default:
		return &RawIngester{}
	}
}

func wordCount(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}

func titleFromText(text string, maxLen int) string {
	line := text
	if idx := strings.IndexByte(text, '\n'); idx > 0 {
		line = text[:idx]
	}
	line = strings.TrimSpace(line)
	if len(line) > maxLen {
		line = line[:maxLen] + "..."
	}
	if line == "" {
		return "Untitled"
	}
	return line
}

func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	if info.Size() > maxInputSize {
		return fmt.Errorf("%s is too large (%d MB, max %d MB)", path, info.Size()/(1024*1024), maxInputSize/(1024*1024))
	}
	return nil
}
