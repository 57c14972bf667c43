package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/ai"
	"github.com/bookpress/bookpress/internal/config"
	"github.com/bookpress/bookpress/internal/cover"
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "AI assistance for titles, descriptions and keywords",
	Long: `Uses an AI model (OpenAI, Groq or Gemini) to help with publishing
metadata: title suggestions, cover color schemes, book descriptions,
search keywords, back cover copy and proofreading.

The provider is selected with --provider or BOOKPRESS_AI_PROVIDER.`,
}

var aiTitlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Suggest title and subtitle pairs",
	RunE:  runAITitles,
}

var aiSchemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Suggest a cover color scheme",
	RunE:  runAIScheme,
}

var aiDescribeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Generate a book description",
	RunE:  runAIDescribe,
}

var aiKeywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Generate search keywords",
	RunE:  runAIKeywords,
}

var aiBackCoverCmd = &cobra.Command{
	Use:   "backcover",
	Short: "Generate back cover copy",
	RunE:  runAIBackCover,
}

var aiProofreadCmd = &cobra.Command{
	Use:   "proofread [file]",
	Short: "Proofread a manuscript file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAIProofread,
}

func init() {
	rootCmd.AddCommand(aiCmd)
	aiCmd.AddCommand(aiTitlesCmd, aiSchemeCmd, aiDescribeCmd, aiKeywordsCmd, aiBackCoverCmd, aiProofreadCmd)

	aiCmd.PersistentFlags().String("provider", "", "AI provider: openai, groq, gemini (default from config)")
	aiCmd.PersistentFlags().String("title", "", "Working title")
	aiCmd.PersistentFlags().String("subtitle", "", "Working subtitle")
	aiCmd.PersistentFlags().String("author", "", "Author name")
	aiCmd.PersistentFlags().String("genre", "", "Genre")
	aiCmd.PersistentFlags().String("audience", "", "Target audience")
	aiCmd.PersistentFlags().String("synopsis", "", "Short synopsis")

	aiTitlesCmd.Flags().Int("count", 5, "Number of suggestions")
	aiKeywordsCmd.Flags().Int("count", 7, "Number of keywords")
}

// newAIProvider builds the configured AI provider.
func newAIProvider(cmd *cobra.Command, cfg *config.Config) (ai.Provider, error) {
	name := cmd.Flag("provider").Value.String()
	if name == "" {
		name = cfg.AI.Provider
	}

	switch name {
	case "openai":
		if cfg.AI.OpenAIToken == "" {
			return nil, errors.New("OPENAI_TOKEN environment variable is required")
		}
		model := cfg.AI.OpenAIModel
		pricing := cfg.GetModelPricing(model)
		return ai.NewOpenAIProvider(cfg.AI.OpenAIToken, model, "", ai.RequestPricing{
			Input:  pricing.Standard.Input,
			Output: pricing.Standard.Output,
		}), nil
	case "groq":
		if cfg.AI.GroqAPIKey == "" {
			return nil, errors.New("GROQ_API_KEY environment variable is required")
		}
		model := cfg.AI.OpenAIModel
		pricing := cfg.GetModelPricing(model)
		return ai.NewOpenAIProvider(cfg.AI.GroqAPIKey, model, ai.GroqBaseURL, ai.RequestPricing{
			Input:  pricing.Standard.Input,
			Output: pricing.Standard.Output,
		}), nil
	case "gemini":
		if cfg.AI.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY environment variable is required")
		}
		pricing := cfg.GetModelPricing("gemini-2.5-flash")
		provider, err := ai.NewGeminiProvider(context.Background(), cfg.AI.GeminiAPIKey, ai.RequestPricing{
			Input:  pricing.Standard.Input,
			Output: pricing.Standard.Output,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: openai, groq, gemini)", name)
	}
}

// briefFromFlags builds a BookBrief from the persistent ai flags.
func briefFromFlags(cmd *cobra.Command) ai.BookBrief {
	get := func(name string) string { return cmd.Flag(name).Value.String() }
	return ai.BookBrief{
		Title:    get("title"),
		Subtitle: get("subtitle"),
		Author:   get("author"),
		Genre:    get("genre"),
		Audience: get("audience"),
		Synopsis: get("synopsis"),
	}
}

// printUsage reports token usage and cost after a provider call.
func printUsage(provider ai.Provider) {
	usage := provider.GetUsage()
	if usage.InputTokens > 0 || usage.OutputTokens > 0 {
		fmt.Printf("\nAPI Usage:\n")
		fmt.Printf("  Input tokens: %d\n", usage.InputTokens)
		fmt.Printf("  Output tokens: %d\n", usage.OutputTokens)
		fmt.Printf("  Total cost: $%.4f\n", usage.TotalCost)
	}
}

func runAITitles(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	provider, err := newAIProvider(cmd, cfg)
	if err != nil {
		return err
	}

	suggestions, err := provider.SuggestTitles(cmd.Context(), briefFromFlags(cmd), mustGetInt(cmd, "count"))
	if err != nil {
		return err
	}

	for i, s := range suggestions {
		fmt.Printf("%d. %s\n", i+1, s.Title)
		if s.Subtitle != "" {
			fmt.Printf("   Subtitle: %s\n", s.Subtitle)
		}
		if s.Rationale != "" {
			fmt.Printf("   Why: %s\n", s.Rationale)
		}
	}
	printUsage(provider)
	return nil
}

func runAIScheme(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	provider, err := newAIProvider(cmd, cfg)
	if err != nil {
		return err
	}

	names := make([]string, len(cover.Schemes))
	for i, s := range cover.Schemes {
		names[i] = s.Name
	}

	suggestion, err := provider.SuggestColorScheme(cmd.Context(), briefFromFlags(cmd), names)
	if err != nil {
		return err
	}

	fmt.Printf("Scheme: %s\n", suggestion.Scheme)
	if scheme, ok := cover.SchemeByName(suggestion.Scheme); ok {
		fmt.Printf("  Colors: %s / %s\n", scheme.Primary, scheme.Secondary)
	}
	if suggestion.Rationale != "" {
		fmt.Printf("  Why: %s\n", suggestion.Rationale)
	}
	printUsage(provider)
	return nil
}

func runAIDescribe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	provider, err := newAIProvider(cmd, cfg)
	if err != nil {
		return err
	}

	text, err := provider.GenerateDescription(cmd.Context(), briefFromFlags(cmd))
	if err != nil {
		return err
	}

	fmt.Println(text)
	printUsage(provider)
	return nil
}

func runAIKeywords(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	provider, err := newAIProvider(cmd, cfg)
	if err != nil {
		return err
	}

	keywords, err := provider.GenerateKeywords(cmd.Context(), briefFromFlags(cmd), mustGetInt(cmd, "count"))
	if err != nil {
		return err
	}

	for _, kw := range keywords {
		fmt.Println(kw)
	}
	printUsage(provider)
	return nil
}

func runAIBackCover(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	provider, err := newAIProvider(cmd, cfg)
	if err != nil {
		return err
	}

	text, err := provider.GenerateBackCoverCopy(cmd.Context(), briefFromFlags(cmd))
	if err != nil {
		return err
	}

	fmt.Println(text)
	printUsage(provider)
	return nil
}

func runAIProofread(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	provider, err := newAIProvider(cmd, cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading manuscript: %w", err)
	}

	result, err := provider.Proofread(cmd.Context(), string(data))
	if err != nil {
		return err
	}

	if len(result.Issues) == 0 {
		fmt.Println("No issues found")
	}
	for _, issue := range result.Issues {
		fmt.Printf("- %q -> %q\n", issue.Original, issue.Suggestion)
		if issue.Note != "" {
			fmt.Printf("  %s\n", issue.Note)
		}
	}
	if result.Corrected != "" && len(result.Issues) > 0 {
		fmt.Printf("\nCorrected text:\n%s\n", strings.TrimSpace(result.Corrected))
	}
	printUsage(provider)
	return nil
}
