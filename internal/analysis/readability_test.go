package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"the", 1},
		{"a", 1},
		{"hello", 2},
		{"people", 2},
		{"exciting", 3},
		{"breakthrough", 2},
		{"jumped", 1},
		{"yellow", 2},
		{"Reliability,", 5},
		{"12345", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, countSyllables(tt.word))
		})
	}
}

func TestReadabilityGuardsEmptyInput(t *testing.T) {
	r := analyzeReadability(nil, nil)

	assert.Equal(t, "elementary", r.ComplexityLevel)
	assert.Zero(t, r.AvgWordsPerSentence)
	assert.Zero(t, r.AvgSyllablesPerWord)
}

// Raising words-per-sentence while holding syllables-per-word fixed
// must never lower the grade.
func TestFleschKincaidMonotonicInSentenceLength(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = "cat"
	}

	short := analyzeReadability(words, make([]string, 8)) // 5 words/sentence
	long := analyzeReadability(words, make([]string, 2))  // 20 words/sentence

	assert.GreaterOrEqual(t, long.FleschKincaidGrade, short.FleschKincaidGrade)
	assert.Greater(t, long.FleschKincaidGrade, short.FleschKincaidGrade)
}

func TestComplexityLevelThresholds(t *testing.T) {
	tests := []struct {
		grade float64
		want  string
	}{
		{17.2, "graduate"},
		{16.0, "graduate"},
		{14.5, "college"},
		{13.0, "college"},
		{10.0, "high-school"},
		{9.0, "high-school"},
		{7.3, "middle"},
		{6.0, "middle"},
		{4.0, "elementary"},
		{-1.0, "elementary"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, complexityLevel(tt.grade), "grade %.1f", tt.grade)
	}
}
