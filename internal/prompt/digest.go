package prompt

import (
	"fmt"
	"strings"

	"github.com/apresai/repost/internal/analysis"
)

// metricsDigest renders a StyleMetrics record as the human-readable
// voice-profile block embedded in persona prompts. Output is fully
// deterministic: field order is fixed and every list keeps its
// extraction order.
func metricsDigest(m analysis.StyleMetrics) string {
	var b strings.Builder

	writeList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "- %s: %s\n", label, strings.Join(items, ", "))
	}

	writeList("Tone", m.Tone)
	writeList("Structure", m.Structure)
	writeList("Vocabulary", m.Vocabulary)
	fmt.Fprintf(&b, "- Typical sentence length: %s\n", m.SentenceLength)
	fmt.Fprintf(&b, "- Writing complexity: %s\n", m.WritingComplexity)
	writeList("Engagement habits", m.Engagement)

	fmt.Fprintf(&b, "- Sentiment: %s", m.Sentiment.Dominant)
	if len(m.Sentiment.EmotionalRange) > 0 {
		fmt.Fprintf(&b, " (emotional range: %s)", strings.Join(m.Sentiment.EmotionalRange, ", "))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "- Readability: %s level (Flesch-Kincaid grade %.1f)\n",
		m.Readability.ComplexityLevel, m.Readability.FleschKincaidGrade)

	writeList("Common topics", m.CommonTopics)
	writeList("Key phrases", m.KeyPhrases)

	if len(m.SemanticClusters) > 0 {
		names := make([]string, len(m.SemanticClusters))
		for i, c := range m.SemanticClusters {
			names[i] = fmt.Sprintf("%s (%d mentions)", c.Topic, c.Frequency)
		}
		writeList("Recurring themes", names)
	}

	writeList("Punctuation habits", m.Fingerprint.PunctuationPatterns)
	if m.Fingerprint.CapitalizationStyle != "" && m.Fingerprint.CapitalizationStyle != "standard" {
		fmt.Fprintf(&b, "- Capitalization: %s\n", m.Fingerprint.CapitalizationStyle)
	}
	writeList("Emphasis markers", m.Fingerprint.EmphasisMarkers)
	writeList("Transition words", m.Fingerprint.TransitionWords)

	writeList("Time references", m.Temporal.TimeReferences)
	writeList("Urgency markers", m.Temporal.UrgencyIndicators)
	if m.Temporal.FutureFocusScore > 0 {
		fmt.Fprintf(&b, "- Future focus: %.1f%% of the text looks forward\n", m.Temporal.FutureFocusScore)
	}

	return strings.TrimRight(b.String(), "\n")
}
