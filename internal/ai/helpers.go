package ai

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed prompts/titles.txt
var titlesPrompt string

//go:embed prompts/color_scheme.txt
var colorSchemePrompt string

//go:embed prompts/description.txt
var descriptionPrompt string

//go:embed prompts/keywords.txt
var keywordsPrompt string

//go:embed prompts/back_cover.txt
var backCoverPrompt string

//go:embed prompts/proofread.txt
var proofreadPrompt string

func buildTitlesPrompt(count int) string {
	return fmt.Sprintf(titlesPrompt, count)
}

func buildColorSchemePrompt(schemes []string) string {
	names, _ := json.Marshal(schemes)
	return fmt.Sprintf(colorSchemePrompt, string(names))
}

func buildKeywordsPrompt(count int) string {
	return fmt.Sprintf(keywordsPrompt, count)
}

// buildBriefContent renders the book brief as the user message. Shared
// across all AI providers.
func buildBriefContent(brief BookBrief) string {
	var b strings.Builder
	if brief.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", brief.Title)
	}
	if brief.Subtitle != "" {
		fmt.Fprintf(&b, "Subtitle: %s\n", brief.Subtitle)
	}
	if brief.Author != "" {
		fmt.Fprintf(&b, "Author: %s\n", brief.Author)
	}
	if brief.Genre != "" {
		fmt.Fprintf(&b, "Genre: %s\n", brief.Genre)
	}
	if brief.Audience != "" {
		fmt.Fprintf(&b, "Target audience: %s\n", brief.Audience)
	}
	if brief.Synopsis != "" {
		fmt.Fprintf(&b, "\nSynopsis:\n%s\n", brief.Synopsis)
	}
	if b.Len() == 0 {
		return "No brief provided."
	}
	return b.String()
}
