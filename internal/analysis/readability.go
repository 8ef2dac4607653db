package analysis

import (
	"regexp"
	"strings"
)

var (
	silentSuffixRe = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingYRe     = regexp.MustCompile(`^y`)
	vowelGroupRe   = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// analyzeReadability computes a Flesch-Kincaid grade from a heuristic
// syllable count. Empty input collapses to the formula's floor.
func analyzeReadability(words, sentences []string) Readability {
	totalSyllables := 0
	for _, w := range words {
		totalSyllables += countSyllables(w)
	}

	avgWords := float64(len(words)) / float64(max(len(sentences), 1))
	avgSyllables := float64(totalSyllables) / float64(max(len(words), 1))

	grade := round1(0.39*avgWords + 11.8*avgSyllables - 15.59)

	return Readability{
		FleschKincaidGrade:  grade,
		AvgWordsPerSentence: round1(avgWords),
		AvgSyllablesPerWord: round1(avgSyllables),
		ComplexityLevel:     complexityLevel(grade),
	}
}

// countSyllables approximates syllables per word: short words count as
// one; otherwise strip a silent-e style suffix and a leading y, then
// count vowel-group runs with a floor of one.
func countSyllables(word string) int {
	w := strings.TrimFunc(strings.ToLower(word), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	if len(w) <= 3 {
		return 1
	}
	w = silentSuffixRe.ReplaceAllString(w, "")
	w = leadingYRe.ReplaceAllString(w, "")
	groups := vowelGroupRe.FindAllString(w, -1)
	if len(groups) == 0 {
		return 1
	}
	return len(groups)
}

func complexityLevel(grade float64) string {
	switch {
	case grade >= 16:
		return "graduate"
	case grade >= 13:
		return "college"
	case grade >= 9:
		return "high-school"
	case grade >= 6:
		return "middle"
	default:
		return "elementary"
	}
}
