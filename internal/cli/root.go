// Package cli implements the repost command line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apresai/repost/internal/analysis"
	"github.com/apresai/repost/internal/generate"
	"github.com/apresai/repost/internal/ingest"
	"github.com/apresai/repost/internal/persona"
	"github.com/apresai/repost/internal/pipeline"
	"github.com/apresai/repost/internal/platform"
	"github.com/apresai/repost/internal/progress"
	"github.com/apresai/repost/internal/prompt"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "repost",
	Short: "Turn articles into platform-specific posts written in trained voices",
	RunE: func(cmd *cobra.Command, args []string) error {
		flagTUI = true
		return runGenerate(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("repost %s\n", Version)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate content for a platform from a URL, feed, file, or raw text",
	RunE:  runGenerate,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input>",
	Short: "Analyze the writing style of a text, file, URL, or feed",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms and their posting guidelines",
	RunE:  runPlatforms,
}

var (
	flagInput           string
	flagOutput          string
	flagPlatform        string
	flagKind            string
	flagPersonas        string
	flagKeywords        string
	flagAttributeSource bool
	flagPromptOnly      bool
	flagNormalize       bool
	flagModel           string
	flagProvider        string
	flagVerbose         bool
	flagTUI             bool
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(personaCmd)

	generateCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Source content (URL, RSS feed, PDF path, text file path, or raw text)")
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the generated content to this file instead of stdout")
	generateCmd.Flags().StringVarP(&flagPlatform, "platform", "P", "linkedin", "Target platform: "+strings.Join(platform.IDs(), ", "))
	generateCmd.Flags().StringVarP(&flagKind, "kind", "k", "post", "Content kind: post, blog, summary, diagram")
	generateCmd.Flags().StringVarP(&flagPersonas, "personas", "p", "", "Personas with optional weights, e.g. \"casey\" or \"casey:0.7,sam:0.3\"")
	generateCmd.Flags().StringVarP(&flagKeywords, "keywords", "K", "", "Comma-separated keywords to work into the content")
	generateCmd.Flags().BoolVarP(&flagAttributeSource, "attribute-source", "a", false, "Close the content with a source attribution line")
	generateCmd.Flags().BoolVarP(&flagPromptOnly, "prompt-only", "s", false, "Print the synthesized prompt and skip generation")
	generateCmd.Flags().BoolVarP(&flagNormalize, "normalize", "N", false, "Normalize persona weights to sum to 1.0 before synthesis")
	generateCmd.Flags().StringVarP(&flagModel, "model", "m", "haiku", "Generation model: haiku, sonnet, nova-lite")
	generateCmd.Flags().StringVarP(&flagProvider, "provider", "g", "claude", "Generation provider: claude, bedrock")
	generateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable detailed logging")
	generateCmd.Flags().BoolVarP(&flagTUI, "tui", "t", false, "Interactive setup wizard for generation options")
}

func Execute() error {
	return rootCmd.Execute()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if flagTUI {
		if err := runInteractiveSetup(); err != nil {
			return err
		}
	}

	if flagInput == "" {
		return fmt.Errorf("--input (-i) is required")
	}

	kind := prompt.Kind(flagKind)
	switch kind {
	case prompt.KindPost, prompt.KindBlog, prompt.KindSummary, prompt.KindDiagram:
	default:
		return fmt.Errorf("invalid kind %q: must be post, blog, summary, or diagram", flagKind)
	}

	if kind == prompt.KindPost || kind == prompt.KindBlog {
		if _, err := platform.Lookup(flagPlatform); err != nil {
			return fmt.Errorf("invalid platform %q: run `repost platforms` for the supported list", flagPlatform)
		}
	}

	refs, err := parsePersonaRefs(flagPersonas)
	if err != nil {
		return err
	}
	if flagNormalize {
		refs = normalizeRefs(refs)
	}

	gen, err := newGenerator(flagProvider, flagModel)
	if err != nil {
		return err
	}

	if err := checkAPIKeys(flagProvider); err != nil {
		return err
	}

	store, _, err := openStoreAndBuilder()
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Input:           flagInput,
		Platform:        flagPlatform,
		Kind:            kind,
		Personas:        refs,
		Keywords:        splitList(flagKeywords),
		AttributeSource: flagAttributeSource,
		PromptOnly:      flagPromptOnly,
	}

	// Wire up progress bar when not in verbose mode; stderr keeps
	// stdout clean for the generated content.
	var renderer *progress.BarRenderer
	if !flagVerbose {
		renderer = progress.NewBarRenderer(os.Stderr)
		opts.OnProgress = renderer.Handle
	}

	result, err := pipeline.New(store, gen).Run(cmd.Context(), opts)
	if renderer != nil {
		renderer.Finish()
	}
	if err != nil {
		return err
	}

	out := result.Content
	if flagPromptOnly {
		out = result.Prompt
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved to %s\n", flagOutput)
		return nil
	}

	fmt.Println(out)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := args[0]

	ingester := ingest.NewIngester(input)
	content, err := ingester.Ingest(cmd.Context(), input)
	if err != nil {
		return err
	}

	metrics := analysis.NewDefault().Analyze(content.Text)
	data, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	fmt.Println("\nSupported platforms:")
	for _, id := range platform.IDs() {
		spec, err := platform.Lookup(id)
		if err != nil {
			return err
		}
		links := "plain URLs"
		if spec.MarkdownLinks {
			links = "markdown links"
		}
		fmt.Printf("\n  %s (%s, %s)\n", spec.ID, spec.DisplayFormat, links)
		for _, g := range spec.Guidelines {
			fmt.Printf("    - %s\n", g)
		}
	}
	fmt.Println()
	return nil
}

// newGenerator picks the generation backend.
func newGenerator(provider, model string) (generate.Generator, error) {
	switch provider {
	case "claude":
		if model != "haiku" && model != "sonnet" {
			return nil, fmt.Errorf("invalid model %q for claude: must be haiku or sonnet", model)
		}
		return generate.NewClaudeGenerator(model), nil
	case "bedrock":
		if model != "nova-lite" {
			return nil, fmt.Errorf("invalid model %q for bedrock: must be nova-lite", model)
		}
		return generate.NewBedrockGenerator(model)
	default:
		return nil, fmt.Errorf("invalid provider %q: must be claude or bedrock", provider)
	}
}

func checkAPIKeys(provider string) error {
	if flagPromptOnly {
		return nil
	}
	if provider == "claude" && os.Getenv("ANTHROPIC_API_KEY") == "" {
		return fmt.Errorf("missing required environment variable ANTHROPIC_API_KEY")
	}
	return nil
}

// openStoreAndBuilder opens the local persona store under the default
// directory, sharing one builder for training and loading.
func openStoreAndBuilder() (persona.Store, *persona.Builder, error) {
	dir, err := persona.DefaultDir()
	if err != nil {
		return nil, nil, err
	}
	builder := persona.NewBuilder(analysis.NewDefault())
	store, err := persona.NewFileStore(dir, builder)
	if err != nil {
		return nil, nil, err
	}
	return store, builder, nil
}

// normalizeRefs scales weights to sum to 1.0 with two-decimal
// rounding, reusing the synthesizer's normalization.
func normalizeRefs(refs []pipeline.PersonaRef) []pipeline.PersonaRef {
	if len(refs) == 0 {
		return refs
	}
	weighted := make([]prompt.WeightedPersona, len(refs))
	for i, r := range refs {
		weighted[i] = prompt.WeightedPersona{Weight: r.Weight}
	}
	normalized := prompt.Normalize(weighted)
	out := make([]pipeline.PersonaRef, len(refs))
	for i, r := range refs {
		out[i] = pipeline.PersonaRef{Name: r.Name, Weight: normalized[i].Weight}
	}
	return out
}

// parsePersonaRefs parses "casey" or "casey:0.7,sam:0.3".
func parsePersonaRefs(s string) ([]pipeline.PersonaRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var refs []pipeline.PersonaRef
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, weightStr, hasWeight := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid persona reference %q", part)
		}
		weight := 1.0
		if hasWeight {
			w, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid weight in persona reference %q", part)
			}
			weight = w
		}
		refs = append(refs, pipeline.PersonaRef{Name: name, Weight: weight})
	}
	return refs, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
