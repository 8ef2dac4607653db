package ingest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

// maxFeedEntries caps how many entries of a feed are folded into one
// Content. Recent entries come first in most feeds, so the cap keeps
// the freshest writing.
const maxFeedEntries = 10

// RSSIngester fetches an RSS or Atom feed and joins its recent entries
// into a single text, used mostly as persona training material.
type RSSIngester struct{}

func (r *RSSIngester) Ingest(ctx context.Context, source string) (*Content, error) {
	fp := gofeed.NewParser()
	fp.Client = &http.Client{Timeout: 30 * time.Second}

	feed, err := fp.ParseURLWithContext(source, ctx)
	if err != nil {
		return nil, fmt.Errorf("could not parse feed %s: %w", source, err)
	}
	if len(feed.Items) == 0 {
		return nil, fmt.Errorf("feed %s has no entries", source)
	}

	policy := bluemonday.UGCPolicy()

	var parts []string
	var links []Link
	for i, item := range feed.Items {
		if i >= maxFeedEntries {
			break
		}
		body := item.Content
		if body == "" {
			body = item.Description
		}
		text := htmlToMarkdown(policy.Sanitize(body))
		if text == "" {
			continue
		}
		if item.Title != "" {
			parts = append(parts, item.Title+"\n\n"+text)
		} else {
			parts = append(parts, text)
		}
		if item.Link != "" && len(links) < maxExtractedLinks {
			links = append(links, Link{Text: item.Title, URL: item.Link})
		}
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("feed %s has no readable entries", source)
	}

	text := strings.Join(parts, "\n\n---\n\n")
	title := feed.Title
	if title == "" {
		title = titleFromText(text, 80)
	}

	return &Content{
		Text:      text,
		Title:     title,
		Source:    source,
		WordCount: wordCount(text),
		Links:     links,
	}, nil
}
