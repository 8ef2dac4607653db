package prompt

import (
	"fmt"
	"strings"

	"github.com/apresai/repost/internal/persona"
)

// writePersonaSection renders the single-persona voice block: authored
// metadata, the full metrics digest, and the complete training text as
// examples. The whole training corpus is embedded, not a prefix, since
// the model needs the full range of the voice to imitate it.
func writePersonaSection(b *strings.Builder, p persona.Profile) {
	fmt.Fprintf(b, "VOICE:\nWrite this in the voice of %q.\n", p.Name)
	writePersonaMetadata(b, p)
	b.WriteString("\nVOICE PROFILE:\n")
	b.WriteString(metricsDigest(p.Metrics))
	b.WriteString("\n\nEXAMPLES TO LEARN FROM:\n")
	b.WriteString(strings.TrimSpace(p.RawTrainingText))
	b.WriteString("\n\n")
}

// writeBlendSections renders one voice block per persona in the
// caller-supplied order, each annotated with its integer influence
// percentage. Weights are rendered as given; normalization is the
// caller's decision.
func writeBlendSections(b *strings.Builder, refs []WeightedPersona) {
	fmt.Fprintf(b, "VOICES:\nBlend the following %d voices. The percentages say how strongly each voice should come through.\n\n", len(refs))

	for i, ref := range refs {
		p := ref.Profile
		pct := influencePercent(ref.Weight)

		fmt.Fprintf(b, "VOICE %d: %q (%d%% influence)\n", i+1, p.Name, pct)
		fmt.Fprintf(b, "%d%% of the content should reflect %s's voice.\n", pct, p.Name)
		writePersonaMetadata(b, p)
		b.WriteString("\nVOICE PROFILE:\n")
		b.WriteString(metricsDigest(p.Metrics))
		fmt.Fprintf(b, "\n\nEXAMPLES TO LEARN FROM (%d%% influence):\n", pct)
		b.WriteString(strings.TrimSpace(p.RawTrainingText))
		b.WriteString("\n\n")
	}
}

func writePersonaMetadata(b *strings.Builder, p persona.Profile) {
	if p.Description != "" {
		fmt.Fprintf(b, "Description: %s\n", p.Description)
	}
	if len(p.DomainTags) > 0 {
		fmt.Fprintf(b, "Domains: %s\n", strings.Join(p.DomainTags, ", "))
	}
	if p.Instructions != "" {
		fmt.Fprintf(b, "Special instructions: %s\n", p.Instructions)
	}
}
