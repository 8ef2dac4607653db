package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraphs",
			in:   "<p>First paragraph.</p><p>Second paragraph.</p>",
			want: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name: "heading",
			in:   "<h2>Section title</h2><p>Body.</p>",
			want: "## Section title\n\nBody.",
		},
		{
			name: "unordered list",
			in:   "<ul><li>one</li><li>two</li></ul>",
			want: "- one\n- two",
		},
		{
			name: "ordered list",
			in:   "<ol><li>first</li><li>second</li></ol>",
			want: "1. first\n2. second",
		},
		{
			name: "link",
			in:   `<p>See <a href="https://example.com">the docs</a>.</p>`,
			want: "See [the docs](https://example.com).",
		},
		{
			name: "emphasis",
			in:   "<p>This is <strong>bold</strong> and <em>italic</em>.</p>",
			want: "This is **bold** and *italic*.",
		},
		{
			name: "inline code",
			in:   "<p>Run <code>go test</code> first.</p>",
			want: "Run `go test` first.",
		},
		{
			name: "pre block",
			in:   "<pre>line one\nline two</pre>",
			want: "```\nline one\nline two\n```",
		},
		{
			name: "blockquote",
			in:   "<blockquote><p>quoted words</p></blockquote>",
			want: "> quoted words",
		},
		{
			name: "script dropped",
			in:   "<p>Kept.</p><script>alert(1)</script>",
			want: "Kept.",
		},
		{
			name: "plain text passthrough",
			in:   "no markup at all",
			want: "no markup at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmlToMarkdown(tt.in))
		})
	}
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "a b c", collapseSpace("a \n\t b  c"))
	assert.Equal(t, " ", collapseSpace("   \n"))
	assert.Equal(t, "", collapseSpace(""))
}
