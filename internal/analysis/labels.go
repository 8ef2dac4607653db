package analysis

import (
	"regexp"
	"strings"
)

// The label detectors below are independent predicates over the text:
// every predicate that fires contributes its label, and the defaults
// only apply when nothing fires at all. Unlike the word-list
// dictionaries these are structural checks, so they live in code
// rather than in Dictionaries.

var (
	bulletRe   = regexp.MustCompile(`(?m)^\s*[-*\x{2022}]\s+`)
	numberedRe = regexp.MustCompile(`(?m)^\s*\d+[.)]\s+`)
	headingRe  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
)

func detectTone(lower, original string) []string {
	var tones []string

	if containsAny(lower, "furthermore", "moreover", "therefore", "consequently", "regarding", "in conclusion") {
		tones = append(tones, "professional")
	}
	if containsAny(lower, "gonna", "wanna", "yeah", "btw", "kinda", "hey ", "stuff") {
		tones = append(tones, "casual")
	}
	if strings.Contains(original, "!") || containsAny(lower, "amazing", "awesome", "exciting", "incredible", "can't wait") {
		tones = append(tones, "enthusiastic")
	}
	if containsAny(lower, "algorithm", "implementation", "architecture", "protocol", "latency", "runtime", "compile") {
		tones = append(tones, "technical")
	}
	if containsAny(lower, "learn", "tutorial", "how to", "step by step", "for example", "let me explain") {
		tones = append(tones, "educational")
	}

	if len(tones) == 0 {
		return []string{"neutral"}
	}
	return tones
}

func detectStructure(text string) []string {
	var structure []string

	if bulletRe.MatchString(text) {
		structure = append(structure, "bullet points")
	}
	if numberedRe.MatchString(text) {
		structure = append(structure, "numbered lists")
	}
	if headingRe.MatchString(text) {
		structure = append(structure, "headings")
	}
	if len(splitParagraphs(text)) > 1 {
		structure = append(structure, "paragraphs")
	}
	if strings.Contains(text, "```") {
		structure = append(structure, "code blocks")
	}

	if len(structure) == 0 {
		return []string{"plain text"}
	}
	return structure
}

func detectVocabulary(lower string) []string {
	var vocab []string

	if containsAny(lower, "api", "sdk", "algorithm", "backend", "kubernetes", "refactor", "middleware") {
		vocab = append(vocab, "technical jargon")
	}
	if containsAny(lower, "roi", "stakeholder", "revenue", "kpi", "quarterly", "go-to-market", "synergy") {
		vocab = append(vocab, "business terms")
	}
	if containsAny(lower, "gonna", "cool", "stuff", "kinda", "awesome", "folks") {
		vocab = append(vocab, "casual language")
	}
	if containsAny(lower, "hypothesis", "methodology", "empirical", "thesis", "literature", "furthermore") {
		vocab = append(vocab, "academic language")
	}

	return vocab
}

func detectEngagement(lower, original string) []string {
	var engagement []string

	if strings.Contains(original, "?") {
		engagement = append(engagement, "questions")
	}
	if containsAny(lower, "try", "subscribe", "follow", "check out", "sign up", "join", "share", "let me know") {
		engagement = append(engagement, "call-to-action")
	}
	if containsAny(lower, "i remember", "my experience", "when i ", "i once", "i learned") {
		engagement = append(engagement, "personal anecdotes")
	}
	if strings.Contains(original, "@") {
		engagement = append(engagement, "social mentions")
	}
	if containsAny(lower, "you ", "your ", "you'") {
		engagement = append(engagement, "direct address")
	}

	return engagement
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
