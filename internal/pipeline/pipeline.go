// Package pipeline orchestrates a full generation run: ingest the
// source, load the requested personas, synthesize the prompt, and call
// the generation provider.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apresai/repost/internal/analysis"
	"github.com/apresai/repost/internal/generate"
	"github.com/apresai/repost/internal/ingest"
	"github.com/apresai/repost/internal/persona"
	"github.com/apresai/repost/internal/progress"
	"github.com/apresai/repost/internal/prompt"
)

// PersonaRef names a stored persona and the weight it carries in the
// blend. Weights are used exactly as given.
type PersonaRef struct {
	Name   string
	Weight float64
}

type Options struct {
	Input           string
	Platform        string
	Kind            prompt.Kind
	Personas        []PersonaRef
	Keywords        []string
	AttributeSource bool
	// PromptOnly stops after synthesis and returns the prompt without
	// calling the generator.
	PromptOnly bool
	// OnProgress receives stage events. Nil means silent.
	OnProgress progress.Callback
}

// Result carries everything a run produced.
type Result struct {
	Prompt    string
	Content   string
	Platform  string
	Title     string
	Source    string
	WordCount int
}

type PipelineError struct {
	Stage   string
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Stage, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Pipeline wires the collaborators a run needs. Store may be nil when
// no personas are requested; Generator may be nil for prompt-only runs.
type Pipeline struct {
	Store       persona.Store
	Generator   generate.Generator
	Synthesizer *prompt.Synthesizer
	Builder     *persona.Builder
}

func New(store persona.Store, gen generate.Generator) *Pipeline {
	return &Pipeline{
		Store:       store,
		Generator:   gen,
		Synthesizer: prompt.NewSynthesizer(),
		Builder:     persona.NewBuilder(analysis.NewDefault()),
	}
}

func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	notify := opts.OnProgress
	if notify == nil {
		notify = progress.NopCallback
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Stage 1: ingest
	notify(progress.NewEvent(progress.StageIngest, "Ingesting content...", 0.05, start))
	ingester := ingest.NewIngester(opts.Input)
	content, err := ingester.Ingest(ctx, opts.Input)
	if err != nil {
		return nil, &PipelineError{Stage: "ingest", Message: "failed to extract content", Err: err}
	}
	notify(progress.NewEvent(progress.StageIngest,
		fmt.Sprintf("Ingested %d words from %s", content.WordCount, content.Source), 0.2, start))

	// Stage 2: personas
	weighted, err := p.loadPersonas(ctx, opts.Personas, notify, start)
	if err != nil {
		return nil, err
	}

	// Stage 3: synthesize
	notify(progress.NewEvent(progress.StageSynthesize, "Building prompt...", 0.45, start))
	req := prompt.Request{
		PlatformID:      opts.Platform,
		Kind:            opts.Kind,
		Title:           content.Title,
		Body:            content.Text,
		Keywords:        opts.Keywords,
		SourceURL:       sourceURL(opts.Input),
		AttributeSource: opts.AttributeSource,
		Links:           promptLinks(content.Links),
		Personas:        weighted,
	}
	rendered, err := p.Synthesizer.Build(req)
	if err != nil {
		return nil, &PipelineError{Stage: "synthesize", Message: "failed to build prompt", Err: err}
	}

	result := &Result{
		Prompt:   rendered,
		Platform: opts.Platform,
		Title:    content.Title,
		Source:   content.Source,
	}

	if opts.PromptOnly {
		notify(progress.Event{Stage: progress.StageComplete, Message: "Prompt ready", Elapsed: time.Since(start)})
		return result, nil
	}

	// Stage 4: generate
	if p.Generator == nil {
		return nil, &PipelineError{Stage: "generate", Message: "no generator configured"}
	}
	notify(progress.NewEvent(progress.StageGenerate, "Generating content...", 0.6, start))
	text, err := p.Generator.Generate(ctx, rendered, generate.Options{})
	if err != nil {
		return nil, &PipelineError{Stage: "generate", Message: "generation failed", Err: err}
	}
	if opts.Kind == prompt.KindDiagram {
		text, err = generate.ExtractDiagram(text)
		if err != nil {
			return nil, &PipelineError{Stage: "generate", Message: "diagram extraction failed", Err: err}
		}
	}

	result.Content = text
	result.WordCount = wordCount(text)

	notify(progress.Event{
		Stage:     progress.StageComplete,
		Message:   "Done",
		Platform:  opts.Platform,
		WordCount: result.WordCount,
		Elapsed:   time.Since(start),
	})
	return result, nil
}

func (p *Pipeline) loadPersonas(ctx context.Context, refs []PersonaRef, notify progress.Callback, start time.Time) ([]prompt.WeightedPersona, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	notify(progress.NewEvent(progress.StagePersonas,
		fmt.Sprintf("Loading %d persona(s)...", len(refs)), 0.3, start))

	weighted := make([]prompt.WeightedPersona, 0, len(refs))
	for _, ref := range refs {
		profile, err := p.resolvePersona(ctx, ref.Name)
		if err != nil {
			return nil, &PipelineError{
				Stage:   "personas",
				Message: fmt.Sprintf("failed to load persona %q", ref.Name),
				Err:     err,
			}
		}
		weighted = append(weighted, prompt.WeightedPersona{Profile: profile, Weight: ref.Weight})
	}
	return weighted, nil
}

// resolvePersona loads a stored persona, falling back to the shipped
// built-in profiles, which live in the binary rather than any store.
func (p *Pipeline) resolvePersona(ctx context.Context, name string) (persona.Profile, error) {
	if p.Store != nil {
		profile, err := p.Store.Get(ctx, name)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, persona.ErrNotFound) {
			return persona.Profile{}, err
		}
	}
	if profile, ok := persona.BuiltinProfile(name, p.Builder); ok {
		return profile, nil
	}
	if p.Store == nil {
		return persona.Profile{}, fmt.Errorf("no persona store configured")
	}
	return persona.Profile{}, fmt.Errorf("%w: %q", persona.ErrNotFound, name)
}

func promptLinks(links []ingest.Link) []prompt.Link {
	if len(links) == 0 {
		return nil
	}
	out := make([]prompt.Link, len(links))
	for i, l := range links {
		out[i] = prompt.Link{Text: l.Text, URL: l.URL}
	}
	return out
}

// sourceURL returns the input when it is a fetchable URL, so the
// prompt can ask for a source attribution line.
func sourceURL(input string) string {
	switch ingest.DetectSource(input) {
	case ingest.SourceURL, ingest.SourceRSS:
		return input
	default:
		return ""
	}
}

func wordCount(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}
