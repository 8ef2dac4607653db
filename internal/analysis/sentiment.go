package analysis

import (
	"math"
	"strings"
)

// analyzeSentiment counts words that contain a positive or negative
// marker. Containment is deliberately substring-based, not whole-word:
// "worst" matches inside "worsted". That looseness is part of the
// contract: changing it would shift the distribution and therefore
// every prompt rendered from a trained persona.
func (a *Analyzer) analyzeSentiment(lower string, words []string) Sentiment {
	lowerWords := strings.Fields(lower)

	positive := 0
	negative := 0
	for _, w := range lowerWords {
		if wordContainsAny(w, a.dicts.PositiveWords) {
			positive++
		}
		if wordContainsAny(w, a.dicts.NegativeWords) {
			negative++
		}
	}

	total := float64(len(words))
	if total == 0 {
		total = 1
	}
	positivePerc := round1(float64(positive) / total * 100)
	negativePerc := round1(float64(negative) / total * 100)
	neutralPerc := round1(100 - positivePerc - negativePerc)

	dominant := "neutral"
	switch {
	case positivePerc > negativePerc && positivePerc > 2:
		dominant = "positive"
	case negativePerc > positivePerc && negativePerc > 2:
		dominant = "negative"
	case math.Abs(positivePerc-negativePerc) < 1 && (positivePerc > 1 || negativePerc > 1):
		dominant = "mixed"
	}

	return Sentiment{
		Dominant: dominant,
		Distribution: Distribution{
			Positive: positivePerc,
			Neutral:  neutralPerc,
			Negative: negativePerc,
		},
		EmotionalRange: a.emotionalRange(lower),
	}
}

// emotionalRange includes each category with at least two indicator
// hits, defaulting to neutral.
func (a *Analyzer) emotionalRange(lower string) []string {
	var labels []string
	for _, er := range a.dicts.EmotionalRanges {
		hits := 0
		for _, ind := range er.Indicators {
			if strings.Contains(lower, ind) {
				hits++
				if hits >= 2 {
					labels = append(labels, er.Label)
					break
				}
			}
		}
	}
	if len(labels) == 0 {
		return []string{"neutral"}
	}
	return labels
}

func wordContainsAny(word string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(word, m) {
			return true
		}
	}
	return false
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
