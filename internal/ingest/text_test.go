package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileIngester(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.md")
	require.NoError(t, os.WriteFile(path, []byte("My Draft Title\n\nBody of the draft with several words."), 0o644))

	content, err := (&FileIngester{}).Ingest(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "My Draft Title", content.Title)
	assert.Equal(t, "draft.md", content.Source)
	assert.Equal(t, 10, content.WordCount)
}

func TestFileIngesterErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := (&FileIngester{}).Ingest(context.Background(), "/nonexistent/file.txt")
		assert.Error(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := (&FileIngester{}).Ingest(context.Background(), t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "directory")
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		_, err := (&FileIngester{}).Ingest(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})
}

func TestRawIngester(t *testing.T) {
	content, err := (&RawIngester{}).Ingest(context.Background(), "  A short thought.\nWith a second line.  ")
	require.NoError(t, err)

	assert.Equal(t, "A short thought.", content.Title)
	assert.Equal(t, "inline text", content.Source)
	assert.Equal(t, 7, content.WordCount)

	_, err = (&RawIngester{}).Ingest(context.Background(), "   ")
	assert.Error(t, err)
}
