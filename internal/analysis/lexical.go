package analysis

import (
	"regexp"
	"strings"
)

const maxKeyPhrases = 10

var (
	sentenceSplitRe  = regexp.MustCompile(`[.!?]+`)
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)
	wordTrimRe       = regexp.MustCompile(`^\W+|\W+$`)
)

func splitWords(text string) []string {
	return strings.Fields(text)
}

func splitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, strings.TrimSpace(s))
		}
	}
	return sentences
}

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range paragraphSplitRe.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// keyPhrases collects two-word phrases in first-occurrence order,
// skipping short filler words, capped at limit.
func keyPhrases(words []string, limit int) []string {
	var phrases []string
	seen := make(map[string]bool)
	for i := 0; i+1 < len(words); i++ {
		first := normalizeWord(words[i])
		second := normalizeWord(words[i+1])
		if len(first) < 4 || len(second) < 4 {
			continue
		}
		phrase := first + " " + second
		if seen[phrase] {
			continue
		}
		seen[phrase] = true
		phrases = append(phrases, phrase)
		if len(phrases) >= limit {
			break
		}
	}
	return phrases
}

func normalizeWord(w string) string {
	return wordTrimRe.ReplaceAllString(strings.ToLower(w), "")
}

// writingComplexity buckets average sentence length into a coarse
// three-level label.
func writingComplexity(avgWordsPerSentence float64) string {
	switch {
	case avgWordsPerSentence >= 20:
		return "complex"
	case avgWordsPerSentence >= 12:
		return "moderate"
	default:
		return "simple"
	}
}

// sentenceLength classifies typical sentence length. When the average
// lands in the middle band, high variance tips the label to "mixed".
func sentenceLength(sentences []string) string {
	if len(sentences) == 0 {
		return "medium"
	}

	lengths := make([]float64, len(sentences))
	var total float64
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
		total += lengths[i]
	}
	mean := total / float64(len(sentences))

	switch {
	case mean < 10:
		return "short"
	case mean > 20:
		return "long"
	}

	var variance float64
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(sentences))
	if variance > 40 {
		return "mixed"
	}
	return "medium"
}
