package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apresai/repost/internal/pipeline"
)

func TestParsePersonaRefs(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		refs, err := parsePersonaRefs("")
		require.NoError(t, err)
		assert.Nil(t, refs)
	})

	t.Run("single name defaults to weight 1", func(t *testing.T) {
		refs, err := parsePersonaRefs("casey")
		require.NoError(t, err)
		assert.Equal(t, []pipeline.PersonaRef{{Name: "casey", Weight: 1.0}}, refs)
	})

	t.Run("weighted blend", func(t *testing.T) {
		refs, err := parsePersonaRefs("casey:0.7, sam:0.3")
		require.NoError(t, err)
		assert.Equal(t, []pipeline.PersonaRef{
			{Name: "casey", Weight: 0.7},
			{Name: "sam", Weight: 0.3},
		}, refs)
	})

	t.Run("bad weight", func(t *testing.T) {
		_, err := parsePersonaRefs("casey:heavy")
		assert.ErrorContains(t, err, "invalid weight")
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := parsePersonaRefs(":0.5")
		assert.ErrorContains(t, err, "invalid persona reference")
	})
}

func TestNormalizeRefs(t *testing.T) {
	refs := normalizeRefs([]pipeline.PersonaRef{
		{Name: "a", Weight: 3},
		{Name: "b", Weight: 1},
	})
	require.Len(t, refs, 2)
	assert.Equal(t, "a", refs[0].Name)
	assert.InDelta(t, 0.75, refs[0].Weight, 0.001)
	assert.InDelta(t, 0.25, refs[1].Weight, 0.001)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList("  "))
	assert.Equal(t, []string{"sre", "devops"}, splitList("sre, devops,"))
}

func TestNewGenerator(t *testing.T) {
	t.Run("claude haiku", func(t *testing.T) {
		gen, err := newGenerator("claude", "haiku")
		require.NoError(t, err)
		assert.NotNil(t, gen)
	})

	t.Run("claude rejects bedrock model", func(t *testing.T) {
		_, err := newGenerator("claude", "nova-lite")
		assert.ErrorContains(t, err, "invalid model")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := newGenerator("openai", "haiku")
		assert.ErrorContains(t, err, "invalid provider")
	})
}
