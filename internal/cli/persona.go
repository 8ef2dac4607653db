package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apresai/repost/internal/ingest"
	"github.com/apresai/repost/internal/persona"
)

var personaCmd = &cobra.Command{
	Use:   "persona",
	Short: "Manage trained writing personas",
}

var personaTrainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a persona from writing samples",
	RunE:  runPersonaTrain,
}

var personaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved personas",
	RunE:  runPersonaList,
}

var personaShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a persona's profile and style metrics",
	Args:  cobra.ExactArgs(1),
	RunE:  runPersonaShow,
}

var personaDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved persona",
	Args:  cobra.ExactArgs(1),
	RunE:  runPersonaDelete,
}

var personaExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Export a persona as a portable backup record",
	Args:  cobra.ExactArgs(1),
	RunE:  runPersonaExport,
}

var personaImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a persona from a backup record",
	Args:  cobra.ExactArgs(1),
	RunE:  runPersonaImport,
}

var personaNormalizeCmd = &cobra.Command{
	Use:   "normalize <refs>",
	Short: "Show a blend's weights rescaled to sum to 1.0",
	Long:  "Normalize takes a weighted persona list like \"casey:3,sam:1\" and prints the rescaled blend without changing how generate treats raw weights.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPersonaNormalize,
}

var (
	flagTrainName         string
	flagTrainContent      string
	flagTrainContentType  string
	flagTrainDescription  string
	flagTrainDomains      string
	flagTrainInstructions string
	flagExportOutput      string
)

func init() {
	personaCmd.AddCommand(personaTrainCmd)
	personaCmd.AddCommand(personaListCmd)
	personaCmd.AddCommand(personaShowCmd)
	personaCmd.AddCommand(personaDeleteCmd)
	personaCmd.AddCommand(personaExportCmd)
	personaCmd.AddCommand(personaImportCmd)
	personaCmd.AddCommand(personaNormalizeCmd)

	personaTrainCmd.Flags().StringVarP(&flagTrainName, "name", "n", "", "Persona name (required)")
	personaTrainCmd.Flags().StringVarP(&flagTrainContent, "content", "c", "", "Writing samples: URL, RSS feed, PDF path, text file path, or raw text (required)")
	personaTrainCmd.Flags().StringVar(&flagTrainContentType, "content-type", "mixed", "Kind of writing the samples are: posts, blogs, mixed")
	personaTrainCmd.Flags().StringVar(&flagTrainDescription, "description", "", "One-line description of the voice")
	personaTrainCmd.Flags().StringVar(&flagTrainDomains, "domains", "", "Comma-separated domain tags, e.g. \"devops,platform\"")
	personaTrainCmd.Flags().StringVar(&flagTrainInstructions, "instructions", "", "Special instructions applied whenever this persona writes")
	personaTrainCmd.MarkFlagRequired("name")
	personaTrainCmd.MarkFlagRequired("content")

	personaExportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Write the backup record to this file instead of stdout")
}

func runPersonaTrain(cmd *cobra.Command, args []string) error {
	contentType := persona.ContentType(flagTrainContentType)
	switch contentType {
	case persona.ContentPosts, persona.ContentBlogs, persona.ContentMixed:
	default:
		return fmt.Errorf("invalid content type %q: must be posts, blogs, or mixed", flagTrainContentType)
	}

	ingester := ingest.NewIngester(flagTrainContent)
	content, err := ingester.Ingest(cmd.Context(), flagTrainContent)
	if err != nil {
		return err
	}

	store, builder, err := openStoreAndBuilder()
	if err != nil {
		return err
	}

	meta := &persona.Metadata{
		Description:  flagTrainDescription,
		DomainTags:   splitList(flagTrainDomains),
		Instructions: flagTrainInstructions,
	}
	profile := builder.Build(flagTrainName, content.Text, contentType, meta)

	if err := store.Save(cmd.Context(), profile); err != nil {
		if errors.Is(err, persona.ErrNameReserved) {
			return fmt.Errorf("%q is a built-in persona name: pick another", flagTrainName)
		}
		return err
	}

	fmt.Printf("Trained persona %q from %d words (%s)\n",
		profile.Name, content.WordCount, content.Source)
	return nil
}

func runPersonaList(cmd *cobra.Command, args []string) error {
	store, _, err := openStoreAndBuilder()
	if err != nil {
		return err
	}

	profiles, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	builtins := persona.BuiltinNames()
	if len(profiles) == 0 && len(builtins) == 0 {
		fmt.Println("No personas trained yet. Run `repost persona train` to create one.")
		return nil
	}

	if len(builtins) > 0 {
		fmt.Println("\nBuilt-in personas:")
		for _, name := range builtins {
			fmt.Printf("  %s\n", name)
		}
	}

	if len(profiles) > 0 {
		fmt.Println("\nTrained personas:")
		for _, p := range profiles {
			line := fmt.Sprintf("  %s (%s", p.Name, p.ContentType)
			if p.Description != "" {
				line += ", " + p.Description
			}
			fmt.Println(line + ")")
		}
	}
	fmt.Println()
	return nil
}

func runPersonaShow(cmd *cobra.Command, args []string) error {
	store, builder, err := openStoreAndBuilder()
	if err != nil {
		return err
	}

	p, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		if !errors.Is(err, persona.ErrNotFound) {
			return err
		}
		builtin, ok := persona.BuiltinProfile(args[0], builder)
		if !ok {
			return fmt.Errorf("persona %q not found: run `repost persona list`", args[0])
		}
		p = builtin
	}

	fmt.Printf("\nPersona: %s\n", p.Name)
	if p.Description != "" {
		fmt.Printf("Description: %s\n", p.Description)
	}
	if len(p.DomainTags) > 0 {
		fmt.Printf("Domains: %s\n", strings.Join(p.DomainTags, ", "))
	}
	if p.Instructions != "" {
		fmt.Printf("Instructions: %s\n", p.Instructions)
	}
	fmt.Printf("Content type: %s\n", p.ContentType)
	fmt.Printf("Trained: %s\n", p.CreatedAt.Format("2006-01-02"))

	m := p.Metrics
	fmt.Println("\nStyle metrics:")
	fmt.Printf("  Training words: %d\n", m.WordCount)
	fmt.Printf("  Tone: %s\n", strings.Join(m.Tone, ", "))
	fmt.Printf("  Sentence length: %s\n", m.SentenceLength)
	fmt.Printf("  Complexity: %s\n", m.WritingComplexity)
	fmt.Printf("  Sentiment: %s\n", m.Sentiment.Dominant)
	fmt.Printf("  Readability: %s (grade %.1f, %.1f words/sentence)\n",
		m.Readability.ComplexityLevel, m.Readability.FleschKincaidGrade,
		m.Readability.AvgWordsPerSentence)
	if len(m.CommonTopics) > 0 {
		fmt.Printf("  Topics: %s\n", strings.Join(m.CommonTopics, ", "))
	}
	if len(m.KeyPhrases) > 0 {
		fmt.Printf("  Key phrases: %s\n", strings.Join(m.KeyPhrases, "; "))
	}
	fmt.Println()
	return nil
}

func runPersonaDelete(cmd *cobra.Command, args []string) error {
	store, _, err := openStoreAndBuilder()
	if err != nil {
		return err
	}

	removed, err := store.Remove(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("persona %q not found", args[0])
	}
	fmt.Printf("Deleted persona %q\n", args[0])
	return nil
}

func runPersonaExport(cmd *cobra.Command, args []string) error {
	store, builder, err := openStoreAndBuilder()
	if err != nil {
		return err
	}

	p, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		builtin, ok := persona.BuiltinProfile(args[0], builder)
		if !ok || !errors.Is(err, persona.ErrNotFound) {
			return err
		}
		p = builtin
	}

	data, err := persona.Export(p)
	if err != nil {
		return err
	}

	if flagExportOutput != "" {
		if err := os.WriteFile(flagExportOutput, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write backup file: %w", err)
		}
		fmt.Printf("Exported %q to %s\n", p.Name, flagExportOutput)
		return nil
	}

	fmt.Println(string(data))
	return nil
}

func runPersonaImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}

	store, builder, err := openStoreAndBuilder()
	if err != nil {
		return err
	}

	p, err := persona.Import(data, builder)
	if err != nil {
		return err
	}

	if err := store.Save(cmd.Context(), p); err != nil {
		if errors.Is(err, persona.ErrNameReserved) {
			return fmt.Errorf("%q is a built-in persona name and cannot be imported", p.Name)
		}
		return err
	}

	fmt.Printf("Imported persona %q\n", p.Name)
	return nil
}

func runPersonaNormalize(cmd *cobra.Command, args []string) error {
	refs, err := parsePersonaRefs(args[0])
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("no persona references given")
	}

	normalized := normalizeRefs(refs)
	for _, r := range normalized {
		fmt.Printf("  %s: %.2f\n", r.Name, r.Weight)
	}
	return nil
}
