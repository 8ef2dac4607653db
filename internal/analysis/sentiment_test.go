package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentDistributionSumsTo100(t *testing.T) {
	a := NewDefault()

	texts := []string{
		"",
		"hello",
		"This is a great day with excellent weather and amazing food.",
		"The worst release ever: broken builds, terrible docs, awful latency.",
		"A great start followed by a terrible finish leaves things even.",
		"Nothing emotional here, just a plain description of a plain thing.",
	}

	for _, text := range texts {
		m := a.Analyze(text)
		sum := m.Sentiment.Distribution.Positive +
			m.Sentiment.Distribution.Neutral +
			m.Sentiment.Distribution.Negative
		assert.InDelta(t, 100.0, sum, 0.1, "text: %q", text)
	}
}

// Sentiment matching is substring containment: a token like "worsted"
// counts toward the negative tally because it contains "worst". See
// the Dictionaries doc comment.
func TestSentimentSubstringMatchingQuirk(t *testing.T) {
	a := NewDefault()

	m := a.Analyze("The worsted wool was itchy.")

	assert.Equal(t, "negative", m.Sentiment.Dominant)
	assert.Greater(t, m.Sentiment.Distribution.Negative, 2.0)
}

func TestSentimentDominantRules(t *testing.T) {
	a := NewDefault()

	t.Run("positive outweighs negative", func(t *testing.T) {
		m := a.Analyze("great great great product with one small problem somewhere")
		assert.Equal(t, "positive", m.Sentiment.Dominant)
	})

	t.Run("negative outweighs positive", func(t *testing.T) {
		m := a.Analyze("terrible awful broken mess with one great idea buried inside")
		assert.Equal(t, "negative", m.Sentiment.Dominant)
	})

	t.Run("balanced strong signals are mixed", func(t *testing.T) {
		// One positive and one negative hit in ten words: 10% each.
		m := a.Analyze("the great launch was followed by a terrible outage yesterday")
		assert.Equal(t, "mixed", m.Sentiment.Dominant)
	})

	t.Run("no signal is neutral", func(t *testing.T) {
		m := a.Analyze("the cat sat on the mat")
		assert.Equal(t, "neutral", m.Sentiment.Dominant)
	})
}

func TestEmotionalRange(t *testing.T) {
	a := NewDefault()

	t.Run("needs two indicators per category", func(t *testing.T) {
		m := a.Analyze("There is hope that things get better over time.")
		assert.Contains(t, m.Sentiment.EmotionalRange, "optimistic")
	})

	t.Run("single indicator defaults to neutral", func(t *testing.T) {
		m := a.Analyze("There is hope.")
		assert.Equal(t, []string{"neutral"}, m.Sentiment.EmotionalRange)
	})
}
