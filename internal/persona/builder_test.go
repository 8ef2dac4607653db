package persona

import (
	"testing"

	"github.com/apresai/repost/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `I shipped a tiny logging library last week. It is fast,
it is small, and honestly the best part was deleting half the code.
Will you give it a try?`

func newTestBuilder() *Builder {
	return NewBuilder(analysis.NewDefault())
}

func TestBuildComputesMetrics(t *testing.T) {
	b := newTestBuilder()

	p := b.Build("casey", sampleText, ContentPosts, nil)

	assert.Equal(t, "casey", p.Name)
	assert.Equal(t, sampleText, p.RawTrainingText)
	assert.Equal(t, ContentPosts, p.ContentType)
	assert.False(t, p.BuiltIn)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Greater(t, p.Metrics.WordCount, 0)
	assert.Empty(t, p.Description)
	assert.Empty(t, p.Instructions)
}

func TestBuildMergesMetadata(t *testing.T) {
	b := newTestBuilder()

	p := b.Build("casey", sampleText, ContentBlogs, &Metadata{
		Description:  "concise engineer voice",
		DomainTags:   []string{"golang"},
		Instructions: "keep it short",
	})

	assert.Equal(t, "concise engineer voice", p.Description)
	assert.Equal(t, []string{"golang"}, p.DomainTags)
	assert.Equal(t, "keep it short", p.Instructions)
}

func TestBuildBuiltinEnrichment(t *testing.T) {
	b := newTestBuilder()

	t.Run("known built-in gets metadata and the flag", func(t *testing.T) {
		p := b.BuildBuiltin("bap", sampleText, ContentPosts)
		assert.True(t, p.BuiltIn)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Instructions)
	})

	t.Run("unknown name proceeds without enrichment", func(t *testing.T) {
		p := b.BuildBuiltin("nobody", sampleText, ContentPosts)
		assert.False(t, p.BuiltIn)
		assert.Empty(t, p.Description)
	})
}

func TestBuiltinProfile(t *testing.T) {
	b := newTestBuilder()

	t.Run("ships usable profiles for every built-in name", func(t *testing.T) {
		for _, name := range BuiltinNames() {
			p, ok := BuiltinProfile(name, b)
			require.True(t, ok, name)
			assert.Equal(t, name, p.Name)
			assert.True(t, p.BuiltIn)
			assert.NotEmpty(t, p.RawTrainingText)
			assert.NotEmpty(t, p.Description)
			assert.Greater(t, p.Metrics.WordCount, 50)
		}
	})

	t.Run("case-insensitive", func(t *testing.T) {
		p, ok := BuiltinProfile("Tenex", b)
		require.True(t, ok)
		assert.Equal(t, "tenex", p.Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := BuiltinProfile("casey", b)
		assert.False(t, ok)
	})
}

func TestBuiltinMetadataLookup(t *testing.T) {
	meta, ok := BuiltinMetadata("BAP")
	require.True(t, ok, "lookup must be case-insensitive")
	assert.NotEmpty(t, meta.Description)

	_, ok = BuiltinMetadata("custom")
	assert.False(t, ok)
}
