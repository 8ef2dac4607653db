package analysis

// Dictionaries is the immutable word-list configuration an Analyzer is
// built with. Passing an alternate set lets tests (or callers with a
// different domain) substitute their own vocabulary without touching
// the extraction logic.
type Dictionaries struct {
	// Topics maps a topic label to its keyword list, in detection order.
	Topics []Topic

	// Sentiment word lists. Matching is substring containment against
	// each whitespace-delimited word, so "worst" also matches inside
	// longer tokens. That behavior is load-bearing: trained personas
	// produce the same prompts only if the counts stay identical.
	PositiveWords []string
	NegativeWords []string

	// EmotionalRanges lists indicator categories; a category applies
	// when at least two of its indicators occur in the text.
	EmotionalRanges []EmotionalRange

	// Clusters is the semantic-cluster table, in declaration order.
	Clusters []ClusterTopic

	// TransitionWords is checked in order; matches keep this order.
	TransitionWords []string

	// Temporal word lists, each checked in order.
	TimeWords    []string
	UrgencyWords []string
	FutureWords  []string
}

// Topic is one entry of the topic-detection dictionary. A topic is
// detected when at least two distinct keywords appear in the text.
type Topic struct {
	Label    string
	Keywords []string
}

// EmotionalRange is one emotional-range category.
type EmotionalRange struct {
	Label      string
	Indicators []string
}

// ClusterTopic is one entry of the semantic-cluster dictionary.
type ClusterTopic struct {
	Topic     string
	Keywords  []string
	Sentiment string
}

// DefaultDictionaries returns the stock word lists used for persona
// training. Callers must treat the result as read-only.
func DefaultDictionaries() Dictionaries {
	return Dictionaries{
		Topics: []Topic{
			{Label: "technology", Keywords: []string{"software", "hardware", "technology", "digital", "innovation", "startup", "programming", "computer", "platform"}},
			{Label: "business", Keywords: []string{"business", "strategy", "market", "revenue", "customer", "growth", "sales", "entrepreneur", "product"}},
			{Label: "cybersecurity", Keywords: []string{"security", "vulnerability", "encryption", "threat", "malware", "firewall", "breach", "phishing", "exploit"}},
			{Label: "devops", Keywords: []string{"deployment", "kubernetes", "docker", "pipeline", "automation", "infrastructure", "monitoring", "terraform", "container"}},
			{Label: "web development", Keywords: []string{"javascript", "frontend", "backend", "react", "css", "html", "api", "framework", "typescript"}},
			{Label: "data science", Keywords: []string{"machine learning", "analytics", "dataset", "statistics", "neural", "model training", "regression", "visualization", "pandas"}},
		},
		PositiveWords: []string{
			"good", "great", "excellent", "amazing", "awesome", "fantastic",
			"love", "best", "exciting", "breakthrough", "success", "win",
			"improve", "happy", "beautiful", "brilliant", "perfect", "wonderful",
		},
		NegativeWords: []string{
			"bad", "worst", "terrible", "awful", "hate", "problem",
			"fail", "wrong", "difficult", "broken", "poor", "disappointing",
			"frustrating", "useless", "painful",
		},
		EmotionalRanges: []EmotionalRange{
			{Label: "optimistic", Indicators: []string{"hope", "exciting", "opportunity", "improve", "growth", "better", "bright", "promising"}},
			{Label: "analytical", Indicators: []string{"because", "therefore", "data", "analysis", "evidence", "consider", "result", "measure"}},
			{Label: "cautious", Indicators: []string{"however", "risk", "careful", "might", "concern", "uncertain", "caveat", "warning"}},
		},
		Clusters: []ClusterTopic{
			{Topic: "innovation", Keywords: []string{"innovation", "breakthrough", "disrupt", "invent", "pioneer", "novel"}, Sentiment: "positive"},
			{Topic: "growth", Keywords: []string{"growth", "scale", "expand", "increase", "accelerate", "momentum"}, Sentiment: "positive"},
			{Topic: "challenges", Keywords: []string{"challenge", "problem", "obstacle", "struggle", "setback", "bottleneck"}, Sentiment: "negative"},
			{Topic: "strategy", Keywords: []string{"strategy", "plan", "roadmap", "priority", "goal", "milestone"}, Sentiment: "neutral"},
			{Topic: "community", Keywords: []string{"community", "team", "together", "collaborat", "partner", "ecosystem"}, Sentiment: "positive"},
		},
		TransitionWords: []string{
			"however", "therefore", "moreover", "furthermore", "meanwhile",
			"consequently", "additionally", "nevertheless", "instead",
			"similarly", "finally", "ultimately",
		},
		TimeWords: []string{
			"today", "yesterday", "tomorrow", "right now", "soon",
			"recently", "currently", "this week", "this month", "this year",
		},
		UrgencyWords: []string{
			"urgent", "immediately", "asap", "deadline", "hurry",
			"critical", "right away", "last chance", "don't wait",
		},
		FutureWords: []string{
			"will", "going to", "future", "upcoming", "next year",
			"plan to", "roadmap", "eventually", "someday",
		},
	}
}
