// Package analysis extracts a structured style profile from raw text.
// Every function here is pure: the same input always produces the same
// StyleMetrics, and extraction never fails: sparse or empty input
// degrades to documented defaults instead of returning errors.
package analysis

// StyleMetrics is the full set of stylistic measurements derived from
// one block of text. A populated record always has a value (or its
// documented default) in every field.
type StyleMetrics struct {
	WordCount     int `json:"word_count"`
	AvgPostLength int `json:"avg_post_length"` // words per paragraph

	CommonTopics []string `json:"common_topics"`
	KeyPhrases   []string `json:"key_phrases"`

	WritingComplexity string `json:"writing_complexity"` // simple, moderate, complex

	Tone           []string `json:"tone"`            // defaults to ["neutral"]
	Structure      []string `json:"structure"`       // defaults to ["plain text"]
	Vocabulary     []string `json:"vocabulary"`      // may be empty
	SentenceLength string   `json:"sentence_length"` // short, medium, long, mixed
	Engagement     []string `json:"engagement"`      // may be empty

	Sentiment        Sentiment         `json:"sentiment"`
	Readability      Readability       `json:"readability"`
	SemanticClusters []SemanticCluster `json:"semantic_clusters"`
	Fingerprint      Fingerprint       `json:"stylistic_fingerprint"`
	Temporal         TemporalPatterns  `json:"temporal_patterns"`
}

// Sentiment describes the emotional polarity of a text.
type Sentiment struct {
	Dominant       string       `json:"dominant"` // positive, neutral, negative, mixed
	Distribution   Distribution `json:"distribution"`
	EmotionalRange []string     `json:"emotional_range"` // defaults to ["neutral"]
}

// Distribution holds sentiment percentages. The three values sum to
// 100 within rounding tolerance.
type Distribution struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Readability holds Flesch-Kincaid style measurements.
type Readability struct {
	FleschKincaidGrade  float64 `json:"flesch_kincaid_grade"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`
	ComplexityLevel     string  `json:"complexity_level"` // elementary, middle, high-school, college, graduate
}

// SemanticCluster is a detected theme: the topic label, which of its
// keywords matched, how often they occur, and the sentiment the topic
// carries.
type SemanticCluster struct {
	Topic           string   `json:"topic"`
	MatchedKeywords []string `json:"matched_keywords"`
	Frequency       int      `json:"frequency"`
	Sentiment       string   `json:"sentiment"`
}

// Fingerprint captures punctuation, capitalization, emphasis, and
// transition-word habits.
type Fingerprint struct {
	PunctuationPatterns []string `json:"punctuation_patterns"`
	CapitalizationStyle string   `json:"capitalization_style"`
	EmphasisMarkers     []string `json:"emphasis_markers"`
	TransitionWords     []string `json:"transition_words"`
}

// TemporalPatterns captures how the text relates to time.
type TemporalPatterns struct {
	TimeReferences    []string `json:"time_references"`
	UrgencyIndicators []string `json:"urgency_indicators"`
	FutureFocusScore  float64  `json:"future_focus_score"` // percentage, one decimal
}
