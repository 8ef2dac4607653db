package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Shipping Less Often Is Not Safer</title></head>
<body>
<article>
<h1>Shipping Less Often Is Not Safer</h1>
<p>Teams that batch changes into quarterly releases believe they are reducing risk, but every incident review we have run points the other way. Large batches hide the one change that broke production behind forty changes that did not, and the rollback story gets worse with every file touched.</p>
<p>When we moved to daily deploys the absolute number of failures stayed flat while the time to diagnose each one collapsed, because the diff under suspicion was small enough to read in one sitting. The postmortem archive from that year is the clearest evidence we have.</p>
<p>None of this is new. The <a href="https://example.org/dora">DORA research</a> has shown the same correlation for a decade, and the argument is laid out well in <a href="https://example.org/accelerate">Accelerate</a>. What is new is how cheap the tooling has become for small teams.</p>
<p>If your release process needs a spreadsheet and a meeting, start by deleting one of the two. The spreadsheet is usually the safer deletion, because the meeting at least forces someone to read the change list out loud before it ships.</p>
</article>
</body>
</html>`

func TestURLIngester(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articlePage))
	}))
	defer srv.Close()

	content, err := (&URLIngester{}).Ingest(context.Background(), srv.URL+"/post")
	require.NoError(t, err)

	assert.Equal(t, "Shipping Less Often Is Not Safer", content.Title)
	assert.Contains(t, content.Text, "quarterly releases")
	assert.Equal(t, srv.URL+"/post", content.Source)
	assert.Greater(t, content.WordCount, 100)

	require.Len(t, content.Links, 2)
	assert.Equal(t, Link{Text: "DORA research", URL: "https://example.org/dora"}, content.Links[0])
	assert.Equal(t, Link{Text: "Accelerate", URL: "https://example.org/accelerate"}, content.Links[1])
}

func TestURLIngesterHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := (&URLIngester{}).Ingest(context.Background(), srv.URL+"/gone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestExtractLinks(t *testing.T) {
	base, _ := url.Parse("https://blog.example.com/post")

	t.Run("resolves relative and dedupes", func(t *testing.T) {
		html := `<p><a href="/about">About</a> and <a href="https://x.com">X</a> and <a href="https://x.com">X again</a></p>`
		links := extractLinks(html, base)
		require.Len(t, links, 2)
		assert.Equal(t, "https://blog.example.com/about", links[0].URL)
		assert.Equal(t, "https://x.com", links[1].URL)
	})

	t.Run("skips anchors and non-http schemes", func(t *testing.T) {
		html := `<p><a href="#section">jump</a> <a href="mailto:a@b.c">mail</a> <a href="https://ok.example.com">ok</a></p>`
		links := extractLinks(html, base)
		require.Len(t, links, 1)
		assert.Equal(t, "https://ok.example.com", links[0].URL)
	})

	t.Run("caps the list", func(t *testing.T) {
		var html string
		for i := 0; i < 20; i++ {
			html += `<a href="https://example.org/` + string(rune('a'+i)) + `">l</a>`
		}
		links := extractLinks(html, base)
		assert.Len(t, links, maxExtractedLinks)
	})
}
