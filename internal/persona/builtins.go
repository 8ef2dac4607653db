package persona

import "strings"

// builtinMetadata is the authored metadata for personas that ship with
// the product. Their names are reserved: user-trained profiles cannot
// be saved under them.
var builtinMetadata = map[string]Metadata{
	"bap": {
		Description: "Build-and-publish voice: a hands-on engineer who writes the way they ship — short sentences, concrete numbers, zero fluff. Shares what worked, what broke, and what the fix cost.",
		DomainTags:  []string{"software engineering", "devops", "indie hacking"},
		Instructions: "Lead with the outcome. Prefer concrete numbers over adjectives. " +
			"One idea per paragraph. Never use corporate phrasing like 'leverage' or 'best-in-class'.",
	},
	"tenex": {
		Description: "Analyst voice for business and strategy content: measured, structured, evidence-first. Frames every claim with the data behind it and closes with an explicit takeaway.",
		DomainTags:  []string{"business", "strategy", "market analysis"},
		Instructions: "Open with the thesis, then support it. Use numbered structure for " +
			"multi-part arguments. Keep the tone confident but hedged where the evidence is thin.",
	},
}

// BuiltinMetadata returns the authored metadata for a built-in persona
// name (case-insensitive). ok is false for unknown names, which is not
// an error: callers simply proceed without enrichment.
func BuiltinMetadata(name string) (*Metadata, bool) {
	meta, ok := builtinMetadata[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return &meta, true
}

// builtinTrainingText is the shipped writing corpus each built-in
// persona derives its metrics from. Profiles are rebuilt from this
// text on demand; built-ins are never persisted to a store.
var builtinTrainingText = map[string]string{
	"bap": `Shipped the new deploy pipeline today. 14 minutes down to 3. The trick was caching the test containers between runs.

We broke prod twice last quarter. Both times the cause was the same: config drift between staging and prod. So we deleted staging. Sounds reckless. It wasn't. Every change now goes out behind a flag, and rollback is one click.

Here is what the migration actually cost. Three weeks of one engineer. 41 flaky tests deleted, 12 rewritten. Zero incidents since. Would do it again.

Stop writing design docs nobody reads. Write the runbook first. If you can't describe how to operate the thing, you don't understand the thing.

The on-call load dropped 60% after we added circuit breakers to the payment service. Not because failures stopped. Because they stopped cascading.`,
	"tenex": `The market for developer tooling is consolidating, and the data supports a clear thesis: distribution now matters more than capability.

Consider the evidence. First, the top three platforms grew their share of new-project adoption from 48% to 71% over two years. Second, standalone tools with superior benchmarks lost ground in the same period. Third, acquisition multiples for tools with embedded distribution ran roughly double those without.

There are two plausible explanations. Switching costs have risen as toolchains deepen, or buyers have shifted from best-of-breed to fewest-vendors purchasing. The procurement data favors the latter, though the sample is small.

The takeaway: a capability advantage without a distribution strategy is a depreciating asset. Teams evaluating the space should weight integration surface over feature depth, and revisit that weighting quarterly as the consolidation plays out.`,
}

// BuiltinProfile rebuilds a built-in persona from its shipped training
// text. ok is false when name is not a built-in.
func BuiltinProfile(name string, b *Builder) (Profile, bool) {
	text, ok := builtinTrainingText[strings.ToLower(name)]
	if !ok {
		return Profile{}, false
	}
	return b.BuildBuiltin(strings.ToLower(name), text, ContentMixed), true
}

// BuiltinNames returns the reserved persona names.
func BuiltinNames() []string {
	return []string{"bap", "tenex"}
}

// IsReserved reports whether name collides with a built-in persona.
func IsReserved(name string) bool {
	_, ok := builtinMetadata[strings.ToLower(name)]
	return ok
}
