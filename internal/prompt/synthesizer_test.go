package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/apresai/repost/internal/analysis"
	"github.com/apresai/repost/internal/persona"
	"github.com/apresai/repost/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedPersona(t *testing.T, name, text string) persona.Profile {
	t.Helper()
	b := persona.NewBuilder(analysis.NewDefault())
	return b.Build(name, text, persona.ContentPosts, nil)
}

func TestBuildStandardTemplate(t *testing.T) {
	s := NewSynthesizer()

	out, err := s.Build(Request{
		PlatformID: "linkedin",
		Kind:       KindPost,
		Title:      "Why boring deploys win",
		Body:       "Deploys should be boring. Here is how we got there.",
		Keywords:   []string{"devops", "reliability"},
	})
	require.NoError(t, err)

	spec, _ := platform.Lookup("linkedin")
	for _, g := range spec.Guidelines {
		assert.Contains(t, out, "- "+g, "guidelines are rendered verbatim")
	}
	assert.Contains(t, out, "TITLE: Why boring deploys win")
	assert.Contains(t, out, "Deploys should be boring.")
	assert.Contains(t, out, "Do not use emojis.")
	assert.Contains(t, out, "devops, reliability")
	assert.NotContains(t, out, "VOICE", "standard template has no persona section")
}

func TestBuildIsDeterministic(t *testing.T) {
	s := NewSynthesizer()
	req := Request{
		PlatformID: "devto",
		Kind:       KindBlog,
		Title:      "t",
		Body:       "b",
		Personas: []WeightedPersona{
			{Profile: trainedPersona(t, "A", "Alpha writes tersely."), Weight: 0.7},
			{Profile: trainedPersona(t, "B", "Beta writes at length."), Weight: 0.3},
		},
	}

	first, err := s.Build(req)
	require.NoError(t, err)
	second, err := s.Build(req)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield byte-identical prompts")
}

func TestBuildPersonaTemplate(t *testing.T) {
	s := NewSynthesizer()
	training := "Short sentences. Concrete numbers. No fluff at all."
	p := trainedPersona(t, "casey", training)
	p.Description = "concise engineer voice"
	p.Instructions = "never exceed three paragraphs"

	out, err := s.Build(Request{
		PlatformID: "devto",
		Kind:       KindPost,
		Title:      "t",
		Body:       "some body",
		Personas:   []WeightedPersona{{Profile: p, Weight: 1}},
	})
	require.NoError(t, err)

	assert.Contains(t, out, `Write this in the voice of "casey"`)
	assert.Contains(t, out, "Description: concise engineer voice")
	assert.Contains(t, out, "Special instructions: never exceed three paragraphs")
	assert.Contains(t, out, "VOICE PROFILE:")
	assert.Contains(t, out, "- Tone:")
	assert.Contains(t, out, "- Readability:")
	assert.Contains(t, out, training, "the full training text is embedded, not a prefix")
}

func TestBuildBlendOrderingAndPercentages(t *testing.T) {
	s := NewSynthesizer()
	a := trainedPersona(t, "A", "Alpha voice sample.")
	b := trainedPersona(t, "B", "Beta voice sample.")

	out, err := s.Build(Request{
		PlatformID: "linkedin",
		Kind:       KindPost,
		Body:       "body",
		Personas: []WeightedPersona{
			{Profile: a, Weight: 0.7},
			{Profile: b, Weight: 0.3},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, `VOICE 1: "A" (70% influence)`)
	assert.Contains(t, out, `VOICE 2: "B" (30% influence)`)
	assert.Contains(t, out, "70% of the content should reflect A's voice.")
	assert.Contains(t, out, "30% of the content should reflect B's voice.")

	posA := strings.Index(out, `VOICE 1: "A"`)
	posB := strings.Index(out, `VOICE 2: "B"`)
	guidelines := strings.Index(out, "PLATFORM GUIDELINES:")
	require.True(t, posA >= 0 && posB >= 0 && guidelines >= 0)
	assert.Less(t, posA, posB, "persona sections keep caller order")
	assert.Less(t, posB, guidelines, "persona sections precede platform guidelines")
}

func TestBuildBlendDoesNotNormalize(t *testing.T) {
	s := NewSynthesizer()
	a := trainedPersona(t, "A", "Alpha voice sample.")
	b := trainedPersona(t, "B", "Beta voice sample.")

	// Weights sum to 2.0 and must be rendered as given.
	out, err := s.Build(Request{
		PlatformID: "linkedin",
		Kind:       KindPost,
		Body:       "body",
		Personas: []WeightedPersona{
			{Profile: a, Weight: 1.5},
			{Profile: b, Weight: 0.5},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "(150% influence)")
	assert.Contains(t, out, "(50% influence)")
}

func TestBuildLinkRendering(t *testing.T) {
	s := NewSynthesizer()
	link := Link{Text: "source", URL: "https://x.com"}

	t.Run("markdown unsupported renders bare URL", func(t *testing.T) {
		out, err := s.Build(Request{
			PlatformID: "linkedin",
			Kind:       KindPost,
			Body:       "body",
			Links:      []Link{link},
		})
		require.NoError(t, err)
		assert.Contains(t, out, "- https://x.com")
		assert.NotContains(t, out, "[source](https://x.com)")
	})

	t.Run("markdown supported renders markdown link", func(t *testing.T) {
		out, err := s.Build(Request{
			PlatformID: "devto",
			Kind:       KindPost,
			Body:       "body",
			Links:      []Link{link},
		})
		require.NoError(t, err)
		assert.Contains(t, out, "[source](https://x.com)")
	})
}

func TestBuildErrors(t *testing.T) {
	s := NewSynthesizer()

	t.Run("unknown platform", func(t *testing.T) {
		_, err := s.Build(Request{PlatformID: "friendster", Kind: KindPost, Body: "b"})
		assert.True(t, errors.Is(err, platform.ErrUnknown))
	})

	t.Run("empty body for post", func(t *testing.T) {
		_, err := s.Build(Request{PlatformID: "linkedin", Kind: KindPost, Body: "   "})
		assert.True(t, errors.Is(err, ErrMissingContent))
	})

	t.Run("empty body for blog", func(t *testing.T) {
		_, err := s.Build(Request{PlatformID: "medium", Kind: KindBlog, Body: ""})
		assert.True(t, errors.Is(err, ErrMissingContent))
	})

	t.Run("invalid blend weight", func(t *testing.T) {
		_, err := s.Build(Request{
			PlatformID: "linkedin",
			Kind:       KindPost,
			Body:       "b",
			Personas:   []WeightedPersona{ref("a", 0.5), ref("b", 0)},
		})
		assert.True(t, errors.Is(err, ErrInvalidWeight))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := s.Build(Request{PlatformID: "linkedin", Kind: "poem", Body: "b"})
		assert.Error(t, err)
	})
}

func TestBuildSummaryIgnoresPlatformAndPersona(t *testing.T) {
	s := NewSynthesizer()

	out, err := s.Build(Request{
		Kind:  KindSummary,
		Title: "t",
		Body:  "long article text",
		// No platform id at all: summary must not need one.
		Personas: []WeightedPersona{ref("a", 1)},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "2-3 paragraph summary")
	assert.Contains(t, out, "long article text")
	assert.NotContains(t, out, "PLATFORM GUIDELINES")
	assert.NotContains(t, out, "VOICE")
}

func TestBuildDiagramGrammar(t *testing.T) {
	s := NewSynthesizer()

	out, err := s.Build(Request{Kind: KindDiagram, Body: "process description"})
	require.NoError(t, err)

	assert.Contains(t, out, "Node IDs must be purely alphanumeric")
	assert.Contains(t, out, `node1["Label text"]`)
	assert.Contains(t, out, "Edge definitions are never quoted")
	assert.NotContains(t, out, "PLATFORM GUIDELINES")
}
