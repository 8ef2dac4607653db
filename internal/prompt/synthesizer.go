// Package prompt renders the instruction prompts handed to the text
// generation providers. Rendering is deterministic: identical inputs,
// including persona order, produce byte-identical prompts, which is
// the only reproducible artifact in an otherwise non-deterministic
// generation pipeline.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apresai/repost/internal/platform"
)

// ErrMissingContent is returned when a post or blog request carries no
// body text.
var ErrMissingContent = errors.New("missing content")

// Kind selects the shape of the rendered prompt.
type Kind string

const (
	KindPost    Kind = "post"
	KindBlog    Kind = "blog"
	KindSummary Kind = "summary"
	KindDiagram Kind = "diagram"
)

// Link is a hyperlink extracted from the source article.
type Link struct {
	Text string
	URL  string
}

// Request carries everything the synthesizer needs for one prompt.
type Request struct {
	PlatformID      string
	Kind            Kind
	Title           string
	Body            string
	Keywords        []string
	SourceURL       string
	AttributeSource bool
	Links           []Link

	// Personas in caller-supplied order. Empty renders the standard
	// template; one renders the persona template; more renders blend
	// mode. Weights are used as given; see Normalize.
	Personas []WeightedPersona
}

// Synthesizer renders prompts. It is stateless and safe for concurrent
// use.
type Synthesizer struct{}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Build renders the prompt for req. Summary and diagram prompts are
// independent of platform and persona; post and blog prompts resolve
// the platform and fold in persona sections.
func (s *Synthesizer) Build(req Request) (string, error) {
	switch req.Kind {
	case KindSummary:
		return buildSummary(req), nil
	case KindDiagram:
		return buildDiagram(req), nil
	case KindPost, KindBlog:
	default:
		return "", fmt.Errorf("unknown content kind %q", req.Kind)
	}

	if strings.TrimSpace(req.Body) == "" {
		return "", fmt.Errorf("%w: %s body is empty", ErrMissingContent, req.Kind)
	}

	spec, err := platform.Lookup(req.PlatformID)
	if err != nil {
		return "", err
	}

	if len(req.Personas) > 0 {
		if err := Validate(req.Personas); err != nil {
			return "", err
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Write a %s for %s based on the source article below.\n\n",
		spec.DisplayFormat, spec.DisplayName)

	switch len(req.Personas) {
	case 0:
		// standard template: no voice section
	case 1:
		writePersonaSection(&b, req.Personas[0].Profile)
	default:
		writeBlendSections(&b, req.Personas)
	}

	b.WriteString("PLATFORM GUIDELINES:\n")
	for _, g := range spec.Guidelines {
		fmt.Fprintf(&b, "- %s\n", g)
	}
	b.WriteString("\n")

	if req.Title != "" {
		fmt.Fprintf(&b, "TITLE: %s\n\n", req.Title)
	}
	fmt.Fprintf(&b, "SOURCE ARTICLE:\n%s\n", req.Body)

	if len(req.Links) > 0 {
		b.WriteString("\nLINKS FROM THE ARTICLE:\n")
		for _, l := range req.Links {
			fmt.Fprintf(&b, "- %s\n", renderLink(spec, l))
		}
	}

	b.WriteString("\nFORMATTING RULES:\n")
	rules := []string{
		"Do not use emojis.",
		"Mention links inline where they naturally fit, never as a bare list at the end.",
		fmt.Sprintf("Return only the finished %s, with no preamble or commentary.", spec.DisplayFormat),
	}
	if len(req.Keywords) > 0 {
		rules = append(rules, fmt.Sprintf("Work these keywords in naturally: %s.", strings.Join(req.Keywords, ", ")))
	}
	if req.AttributeSource && req.SourceURL != "" {
		rules = append(rules, fmt.Sprintf("Close with a one-line source attribution pointing at %s.", req.SourceURL))
	}
	for i, r := range rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}

	return b.String(), nil
}

// renderLink formats a link for the platform: markdown when supported,
// otherwise the bare URL.
func renderLink(spec platform.Spec, l Link) string {
	if spec.MarkdownLinks && l.Text != "" {
		return fmt.Sprintf("[%s](%s)", l.Text, l.URL)
	}
	return l.URL
}

func buildSummary(req Request) string {
	var b strings.Builder
	b.WriteString("Condense the following article into a 2-3 paragraph summary.\n")
	b.WriteString("Keep the author's key claims and numbers; drop examples and asides.\n")
	b.WriteString("Return only the summary text.\n\n")
	if req.Title != "" {
		fmt.Fprintf(&b, "TITLE: %s\n\n", req.Title)
	}
	fmt.Fprintf(&b, "ARTICLE:\n%s\n", req.Body)
	return b.String()
}

func buildDiagram(req Request) string {
	var b strings.Builder
	b.WriteString("Create a flowchart that captures the main process or argument in the article below.\n\n")
	b.WriteString("SYNTAX RULES:\n")
	b.WriteString("1. Node IDs must be purely alphanumeric (no spaces, hyphens, or punctuation).\n")
	b.WriteString("2. Every node label must be wrapped in double quotes: node1[\"Label text\"].\n")
	b.WriteString("3. Edge definitions are never quoted: node1 --> node2.\n")
	b.WriteString("4. Declare each node once before connecting it.\n")
	b.WriteString("5. Keep it under 15 nodes.\n\n")
	b.WriteString("Return only the flowchart code inside a fenced code block.\n\n")
	if req.Title != "" {
		fmt.Fprintf(&b, "TITLE: %s\n\n", req.Title)
	}
	fmt.Fprintf(&b, "ARTICLE:\n%s\n", req.Body)
	return b.String()
}
