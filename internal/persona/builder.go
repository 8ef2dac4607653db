package persona

import (
	"time"

	"github.com/apresai/repost/internal/analysis"
)

// Builder turns raw training text into a Profile. It holds only the
// analyzer, so it is safe for concurrent use.
type Builder struct {
	analyzer *analysis.Analyzer
}

// NewBuilder creates a Builder backed by the given analyzer.
func NewBuilder(a *analysis.Analyzer) *Builder {
	return &Builder{analyzer: a}
}

// Analyzer returns the underlying style analyzer.
func (b *Builder) Analyzer() *analysis.Analyzer {
	return b.analyzer
}

// Build computes style metrics for rawText and wraps them in a
// Profile. A nil meta leaves the authored fields empty; persistence is
// the store's job, not Build's.
func (b *Builder) Build(name, rawText string, contentType ContentType, meta *Metadata) Profile {
	p := Profile{
		Name:            name,
		RawTrainingText: rawText,
		Metrics:         b.analyzer.Analyze(rawText),
		ContentType:     contentType,
		CreatedAt:       time.Now().UTC(),
	}
	if meta != nil {
		p.Description = meta.Description
		p.DomainTags = meta.DomainTags
		p.Instructions = meta.Instructions
	}
	return p
}

// BuildBuiltin is Build plus built-in enrichment: if name matches a
// built-in persona its authored metadata is applied and the profile is
// marked built-in. Unknown names fall through to a plain Build.
func (b *Builder) BuildBuiltin(name, rawText string, contentType ContentType) Profile {
	meta, ok := BuiltinMetadata(name)
	p := b.Build(name, rawText, contentType, meta)
	p.BuiltIn = ok
	return p
}
