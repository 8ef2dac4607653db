package analysis

import "strings"

// Analyzer computes StyleMetrics from raw text. It is stateless apart
// from its dictionaries and safe for concurrent use.
type Analyzer struct {
	dicts Dictionaries
}

// New creates an Analyzer with the given dictionaries.
func New(dicts Dictionaries) *Analyzer {
	return &Analyzer{dicts: dicts}
}

// NewDefault creates an Analyzer with the stock dictionaries.
func NewDefault() *Analyzer {
	return New(DefaultDictionaries())
}

// Analyze extracts a full StyleMetrics record from text. It never
// fails: degenerate input yields neutral defaults, and all divisions
// are guarded with a minimum denominator of 1.
func (a *Analyzer) Analyze(text string) StyleMetrics {
	lower := strings.ToLower(text)
	words := splitWords(text)
	sentences := splitSentences(text)
	paragraphs := splitParagraphs(text)

	wordCount := len(words)
	avgWordsPerSentence := float64(wordCount) / float64(max(len(sentences), 1))

	return StyleMetrics{
		WordCount:         wordCount,
		AvgPostLength:     wordCount / max(len(paragraphs), 1),
		CommonTopics:      a.detectTopics(lower),
		KeyPhrases:        keyPhrases(words, maxKeyPhrases),
		WritingComplexity: writingComplexity(avgWordsPerSentence),
		Tone:              detectTone(lower, text),
		Structure:         detectStructure(text),
		Vocabulary:        detectVocabulary(lower),
		SentenceLength:    sentenceLength(sentences),
		Engagement:        detectEngagement(lower, text),
		Sentiment:         a.analyzeSentiment(lower, words),
		Readability:       analyzeReadability(words, sentences),
		SemanticClusters:  a.semanticClusters(text, lower),
		Fingerprint:       a.fingerprint(text, lower),
		Temporal:          a.temporalPatterns(lower, wordCount),
	}
}

// detectTopics returns every topic with at least two distinct keyword
// hits, in dictionary declaration order.
func (a *Analyzer) detectTopics(lower string) []string {
	var topics []string
	for _, t := range a.dicts.Topics {
		hits := 0
		for _, kw := range t.Keywords {
			if strings.Contains(lower, kw) {
				hits++
				if hits >= 2 {
					topics = append(topics, t.Label)
					break
				}
			}
		}
	}
	return topics
}
