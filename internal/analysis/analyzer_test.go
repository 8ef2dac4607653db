package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeIsDeterministic(t *testing.T) {
	text := `Shipping software is hard. However, our team found that a good
deployment pipeline with monitoring makes releases boring — and boring
is exactly what you want! Will you try it?`

	a := NewDefault()
	first := a.Analyze(text)
	second := a.Analyze(text)

	assert.Equal(t, first, second)
}

func TestAnalyzeEmptyInputDefaults(t *testing.T) {
	a := NewDefault()

	m := a.Analyze("")

	assert.Zero(t, m.WordCount)
	assert.Equal(t, []string{"neutral"}, m.Tone)
	assert.Equal(t, []string{"plain text"}, m.Structure)
	assert.Equal(t, "neutral", m.Sentiment.Dominant)
	assert.Equal(t, []string{"neutral"}, m.Sentiment.EmotionalRange)
	assert.Empty(t, m.CommonTopics)
	assert.Empty(t, m.KeyPhrases)
	assert.Empty(t, m.SemanticClusters)
}

func TestAnalyzeSingleWordDoesNotPanic(t *testing.T) {
	a := NewDefault()

	m := a.Analyze("hello")

	assert.Equal(t, 1, m.WordCount)
	assert.Equal(t, "neutral", m.Sentiment.Dominant)
}

func TestAnalyzeEnthusiasticScenario(t *testing.T) {
	a := NewDefault()

	m := a.Analyze("This is exciting! This is a fantastic breakthrough. Will you try it?")

	assert.Contains(t, m.Tone, "enthusiastic")
	assert.Contains(t, m.Engagement, "questions")
	assert.Contains(t, m.Engagement, "call-to-action")
	assert.Equal(t, "positive", m.Sentiment.Dominant)
}

func TestDetectTopicsRequiresTwoKeywords(t *testing.T) {
	a := NewDefault()

	t.Run("two hits detect the topic", func(t *testing.T) {
		m := a.Analyze("Our software runs on new hardware this quarter.")
		assert.Contains(t, m.CommonTopics, "technology")
	})

	t.Run("one hit is not enough", func(t *testing.T) {
		m := a.Analyze("Our software shipped on time.")
		assert.NotContains(t, m.CommonTopics, "technology")
	})
}

func TestTopicsFollowDictionaryOrder(t *testing.T) {
	a := NewDefault()

	m := a.Analyze(`The security team patched the vulnerability after the
breach. Meanwhile the software platform kept digital sales growing and
revenue ahead of the market.`)

	require.Len(t, m.CommonTopics, 3)
	assert.Equal(t, []string{"technology", "business", "cybersecurity"}, m.CommonTopics)
}

func TestKeyPhrasesFirstOccurrenceOrderAndCap(t *testing.T) {
	words := splitWords("modern kubernetes clusters need careful capacity planning before modern kubernetes rollouts")

	phrases := keyPhrases(words, 3)

	require.Len(t, phrases, 3)
	assert.Equal(t, "modern kubernetes", phrases[0])
	assert.Equal(t, "kubernetes clusters", phrases[1])
	assert.Equal(t, "clusters need", phrases[2])
}

func TestDetectStructure(t *testing.T) {
	a := NewDefault()

	m := a.Analyze("# Release notes\n\n- faster builds\n- smaller images\n\n```\nmake deploy\n```")

	assert.Contains(t, m.Structure, "headings")
	assert.Contains(t, m.Structure, "bullet points")
	assert.Contains(t, m.Structure, "paragraphs")
	assert.Contains(t, m.Structure, "code blocks")
}

func TestSentenceLength(t *testing.T) {
	tests := []struct {
		name      string
		sentences []string
		want      string
	}{
		{"no sentences", nil, "medium"},
		{"short", []string{"Go is fun", "I agree"}, "short"},
		{
			"long",
			[]string{"this single sentence keeps going and going with far more than twenty words in it because the author never learned where the period key is"},
			"long",
		},
		{
			"medium uniform",
			[]string{
				"one two three four five six seven eight nine ten eleven twelve",
				"one two three four five six seven eight nine ten eleven twelve",
			},
			"medium",
		},
		{
			"mixed variance",
			[]string{
				"short one here now",
				"this considerably longer sentence balances that tiny one out by carrying twenty six words of additional weight so the average stays in the middle band overall",
			},
			"mixed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sentenceLength(tt.sentences))
		})
	}
}

func TestAnalyzeWithCustomDictionaries(t *testing.T) {
	dicts := Dictionaries{
		Topics: []Topic{
			{Label: "gardening", Keywords: []string{"tomato", "compost", "pruning"}},
		},
		PositiveWords: []string{"bloom"},
		NegativeWords: []string{"wilt"},
	}
	a := New(dicts)

	m := a.Analyze("The tomato plants bloom well when the compost is fresh.")

	assert.Equal(t, []string{"gardening"}, m.CommonTopics)
	assert.Equal(t, "positive", m.Sentiment.Dominant)
	assert.Empty(t, m.SemanticClusters)
	assert.Empty(t, m.Fingerprint.TransitionWords)
}

func TestSemanticClustersSortedByFrequency(t *testing.T) {
	a := NewDefault()

	m := a.Analyze(`Growth, growth, growth: the team wants to scale and then
scale again. Innovation matters too, and this breakthrough helps.`)

	require.GreaterOrEqual(t, len(m.SemanticClusters), 2)
	for i := 1; i < len(m.SemanticClusters); i++ {
		assert.GreaterOrEqual(t,
			m.SemanticClusters[i-1].Frequency,
			m.SemanticClusters[i].Frequency,
			"clusters must be ordered by descending frequency")
	}
}

func TestFingerprintThresholds(t *testing.T) {
	a := NewDefault()

	t.Run("exclamations above threshold", func(t *testing.T) {
		m := a.Analyze("Wow! Great! Amazing! Unbelievable! More!")
		assert.Contains(t, m.Fingerprint.PunctuationPatterns, "frequent exclamations")
	})

	t.Run("three exclamations are not frequent", func(t *testing.T) {
		m := a.Analyze("Wow! Great! Amazing!")
		assert.NotContains(t, m.Fingerprint.PunctuationPatterns, "frequent exclamations")
	})

	t.Run("emphasis markers", func(t *testing.T) {
		m := a.Analyze("This is **bold** and `code` together.")
		assert.Equal(t, []string{"bold", "code"}, m.Fingerprint.EmphasisMarkers)
	})

	t.Run("lone asterisk reads as italic", func(t *testing.T) {
		m := a.Analyze("This is *subtle* emphasis.")
		assert.Equal(t, []string{"italic"}, m.Fingerprint.EmphasisMarkers)
	})

	t.Run("caps style", func(t *testing.T) {
		m := a.Analyze("This REALLY BIG NEWS needs YOUR FULL attention")
		assert.Equal(t, "frequent emphasis capitalization", m.Fingerprint.CapitalizationStyle)
	})
}

func TestTemporalPatterns(t *testing.T) {
	a := NewDefault()

	m := a.Analyze("Today we ship. Tomorrow we will plan the roadmap. It is urgent.")

	assert.Contains(t, m.Temporal.TimeReferences, "today")
	assert.Contains(t, m.Temporal.TimeReferences, "tomorrow")
	assert.Contains(t, m.Temporal.UrgencyIndicators, "urgent")
	assert.Greater(t, m.Temporal.FutureFocusScore, 0.0)
}
