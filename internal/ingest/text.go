package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileIngester reads a plain-text or markdown file from disk.
type FileIngester struct{}

func (t *FileIngester) Ingest(ctx context.Context, source string) (*Content, error) {
	if err := validateFile(source); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("could not read file %s: %w", source, err)
	}

	text := string(data)
	if len(text) == 0 {
		return nil, fmt.Errorf("file %s is empty", source)
	}

	return &Content{
		Text:      text,
		Title:     titleFromText(text, 80),
		Source:    filepath.Base(source),
		WordCount: wordCount(text),
	}, nil
}

// RawIngester treats its source argument as the content itself, for
// text pasted straight into the CLI or an agent tool call.
type RawIngester struct{}

func (r *RawIngester) Ingest(ctx context.Context, source string) (*Content, error) {
	text := strings.TrimSpace(source)
	if text == "" {
		return nil, fmt.Errorf("no content provided")
	}
	if len(text) > maxInputSize {
		return nil, fmt.Errorf("content is too large (%d MB, max %d MB)", len(text)/(1024*1024), maxInputSize/(1024*1024))
	}

	return &Content{
		Text:      text,
		Title:     titleFromText(text, 80),
		Source:    "inline text",
		WordCount: wordCount(text),
	}, nil
}
