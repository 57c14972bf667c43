package ai

import "context"

// BookBrief carries the manuscript context the assistant works from.
type BookBrief struct {
	Title    string // working title, may be empty when asking for suggestions
	Subtitle string
	Author   string
	Genre    string
	Audience string
	Synopsis string
}

// Provider defines the interface for AI text-generation backends.
type Provider interface {
	Name() string

	// SuggestTitles proposes title/subtitle pairs for the manuscript.
	SuggestTitles(ctx context.Context, brief BookBrief, count int) ([]TitleSuggestion, error)

	// SuggestColorScheme picks one of the given cover scheme names.
	SuggestColorScheme(ctx context.Context, brief BookBrief, schemes []string) (*ColorSchemeSuggestion, error)

	// GenerateDescription writes a KDP product description.
	GenerateDescription(ctx context.Context, brief BookBrief) (string, error)

	// GenerateKeywords produces KDP search keywords.
	GenerateKeywords(ctx context.Context, brief BookBrief, count int) ([]string, error)

	// GenerateBackCoverCopy writes the back-cover blurb for print editions.
	GenerateBackCoverCopy(ctx context.Context, brief BookBrief) (string, error)

	// Proofread reviews a manuscript excerpt and reports issues.
	Proofread(ctx context.Context, text string) (*ProofreadResult, error)

	// Usage tracking.
	GetUsage() *Usage
	ResetUsage()
}

// Usage tracks token usage and calculates cost.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalCost    float64 // in USD
}

// RequestPricing holds input/output prices per 1M tokens.
type RequestPricing struct {
	Input  float64
	Output float64
}

// TitleSuggestion is one proposed title/subtitle pair.
type TitleSuggestion struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	Rationale string `json:"rationale,omitempty"`
}

// ColorSchemeSuggestion names a cover scheme and why it fits.
type ColorSchemeSuggestion struct {
	Scheme    string `json:"scheme"`
	Rationale string `json:"rationale,omitempty"`
}

// ProofreadResult holds the corrected text plus the individual findings.
type ProofreadResult struct {
	Corrected string           `json:"corrected"`
	Issues    []ProofreadIssue `json:"issues"`
}

// ProofreadIssue is a single problem found in the excerpt.
type ProofreadIssue struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
	Note       string `json:"note,omitempty"`
}

// JSON envelopes the prompts ask the models to produce.
type titleSuggestionList struct {
	Suggestions []TitleSuggestion `json:"suggestions"`
}

type keywordList struct {
	Keywords []string `json:"keywords"`
}

type textResult struct {
	Text string `json:"text"`
}
