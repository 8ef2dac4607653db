package analysis

import (
	"math"
	"strings"
	"unicode"
)

// fingerprint collects punctuation, capitalization, emphasis, and
// transition-word habits at fixed thresholds.
func (a *Analyzer) fingerprint(original, lower string) Fingerprint {
	var punctuation []string
	if strings.Count(original, "!") > 3 {
		punctuation = append(punctuation, "frequent exclamations")
	}
	if strings.Count(original, "?") > 2 {
		punctuation = append(punctuation, "questioning style")
	}
	if strings.Contains(original, "...") {
		punctuation = append(punctuation, "ellipsis usage")
	}

	capsStyle := "standard"
	if countAllCapsWords(original) > 3 {
		capsStyle = "frequent emphasis capitalization"
	}

	var emphasis []string
	bold := strings.Contains(original, "**") || strings.Contains(original, "__")
	if bold {
		emphasis = append(emphasis, "bold")
	}
	if !bold && strings.Contains(original, "*") {
		emphasis = append(emphasis, "italic")
	}
	if strings.Contains(original, "`") {
		emphasis = append(emphasis, "code")
	}

	var transitions []string
	for _, t := range a.dicts.TransitionWords {
		if strings.Contains(lower, t) {
			transitions = append(transitions, t)
		}
	}

	return Fingerprint{
		PunctuationPatterns: punctuation,
		CapitalizationStyle: capsStyle,
		EmphasisMarkers:     emphasis,
		TransitionWords:     transitions,
	}
}

// temporalPatterns collects time and urgency references verbatim and
// scores how future-oriented the text is as a one-decimal percentage.
func (a *Analyzer) temporalPatterns(lower string, totalWords int) TemporalPatterns {
	var timeRefs []string
	for _, w := range a.dicts.TimeWords {
		if strings.Contains(lower, w) {
			timeRefs = append(timeRefs, w)
		}
	}

	var urgency []string
	for _, w := range a.dicts.UrgencyWords {
		if strings.Contains(lower, w) {
			urgency = append(urgency, w)
		}
	}

	futureMatches := 0
	for _, w := range a.dicts.FutureWords {
		futureMatches += strings.Count(lower, w)
	}
	score := math.Round(float64(futureMatches)/float64(max(totalWords, 1))*1000) / 10

	return TemporalPatterns{
		TimeReferences:    timeRefs,
		UrgencyIndicators: urgency,
		FutureFocusScore:  score,
	}
}

// countAllCapsWords counts words of length >= 2 made entirely of
// upper-case letters.
func countAllCapsWords(text string) int {
	count := 0
	for _, w := range strings.Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) })
		if len(w) < 2 {
			continue
		}
		allCaps := true
		for _, r := range w {
			if !unicode.IsUpper(r) {
				allCaps = false
				break
			}
		}
		if allCaps {
			count++
		}
	}
	return count
}
