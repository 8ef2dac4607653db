package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Engineering Notes</title>
<link>https://notes.example.com</link>
<item>
<title>Why we deleted our staging environment</title>
<link>https://notes.example.com/staging</link>
<description>&lt;p&gt;Staging drifted from production within a week of every reset, so the signal it gave us was &lt;strong&gt;worse than nothing&lt;/strong&gt;.&lt;/p&gt;</description>
</item>
<item>
<title>Feature flags as a migration tool</title>
<link>https://notes.example.com/flags</link>
<description>&lt;p&gt;We use flags to run old and new code paths side by side and compare the outputs in production traffic.&lt;/p&gt;</description>
</item>
</channel>
</rss>`

func TestRSSIngester(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedXML))
	}))
	defer srv.Close()

	content, err := (&RSSIngester{}).Ingest(context.Background(), srv.URL+"/feed")
	require.NoError(t, err)

	assert.Equal(t, "Engineering Notes", content.Title)
	assert.Equal(t, srv.URL+"/feed", content.Source)

	// Entry titles and bodies are joined, HTML reduced to markdown.
	assert.Contains(t, content.Text, "Why we deleted our staging environment")
	assert.Contains(t, content.Text, "**worse than nothing**")
	assert.Contains(t, content.Text, "Feature flags as a migration tool")
	assert.Contains(t, content.Text, "\n\n---\n\n")

	require.Len(t, content.Links, 2)
	assert.Equal(t, "https://notes.example.com/staging", content.Links[0].URL)
	assert.Equal(t, "Why we deleted our staging environment", content.Links[0].Text)
}

func TestRSSIngesterEmptyFeed(t *testing.T) {
	empty := `<?xml version="1.0"?><rss version="2.0"><channel><title>Empty</title></channel></rss>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(empty))
	}))
	defer srv.Close()

	_, err := (&RSSIngester{}).Ingest(context.Background(), srv.URL+"/feed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entries")
}

func TestRSSIngesterBadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := (&RSSIngester{}).Ingest(context.Background(), srv.URL+"/feed")
	assert.Error(t, err)
}
