package ai

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildBriefContent(t *testing.T) {
	brief := BookBrief{
		Title:    "The Silent Harbor",
		Author:   "J. R. Whitfield",
		Genre:    "mystery",
		Synopsis: "A detective returns to her hometown.",
	}

	content := buildBriefContent(brief)
	for _, want := range []string{
		"Title: The Silent Harbor",
		"Author: J. R. Whitfield",
		"Genre: mystery",
		"Synopsis:\nA detective returns to her hometown.",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("brief content missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "Subtitle:") {
		t.Error("empty fields should be omitted")
	}

	if got := buildBriefContent(BookBrief{}); got != "No brief provided." {
		t.Errorf("empty brief = %q", got)
	}
}

func TestPromptBuilders(t *testing.T) {
	if p := buildTitlesPrompt(5); !strings.Contains(p, "5 title/subtitle pairs") {
		t.Errorf("titles prompt missing count:\n%s", p)
	}

	p := buildColorSchemePrompt([]string{"ocean", "midnight"})
	if !strings.Contains(p, `["ocean","midnight"]`) {
		t.Errorf("scheme prompt missing scheme list:\n%s", p)
	}

	if p := buildKeywordsPrompt(7); !strings.Contains(p, "7 search keyword phrases") {
		t.Errorf("keywords prompt missing count:\n%s", p)
	}

	// No stray formatting verbs left unfilled.
	for name, p := range map[string]string{
		"titles":      buildTitlesPrompt(3),
		"colorScheme": buildColorSchemePrompt(nil),
		"keywords":    buildKeywordsPrompt(3),
		"description": descriptionPrompt,
		"backCover":   backCoverPrompt,
		"proofread":   proofreadPrompt,
	} {
		if strings.Contains(p, "%!") || strings.Contains(p, "%s") || strings.Contains(p, "%d") {
			t.Errorf("%s prompt has unfilled verb:\n%s", name, p)
		}
	}
}

func TestResponseEnvelopes(t *testing.T) {
	var list titleSuggestionList
	raw := `{"suggestions": [{"title": "Tidewater", "subtitle": "", "rationale": "short"}]}`
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list.Suggestions) != 1 || list.Suggestions[0].Title != "Tidewater" {
		t.Errorf("suggestions = %+v", list.Suggestions)
	}

	var result ProofreadResult
	raw = `{"corrected": "the text", "issues": [{"original": "teh", "suggestion": "the", "note": "typo"}]}`
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.Corrected != "the text" || len(result.Issues) != 1 {
		t.Errorf("proofread result = %+v", result)
	}
}

func TestOpenAIProviderSetup(t *testing.T) {
	p := NewOpenAIProvider("test-key", "", "", RequestPricing{Input: 0.4, Output: 1.6})
	if p.Name() != defaultOpenAIModel {
		t.Errorf("Name() = %q, want default model", p.Name())
	}

	groq := NewOpenAIProvider("test-key", "llama-3.3-70b-versatile", GroqBaseURL, RequestPricing{})
	if groq.Name() != "llama-3.3-70b-versatile" {
		t.Errorf("Name() = %q", groq.Name())
	}
}

func TestUsageTracking(t *testing.T) {
	p := NewOpenAIProvider("test-key", "", "", RequestPricing{Input: 1.0, Output: 2.0})
	p.trackUsage(1_000_000, 500_000)

	usage := p.GetUsage()
	if usage.InputTokens != 1_000_000 || usage.OutputTokens != 500_000 {
		t.Errorf("usage tokens = %+v", usage)
	}
	if usage.TotalCost != 2.0 { // 1.0 input + 1.0 output
		t.Errorf("TotalCost = %v, want 2.0", usage.TotalCost)
	}

	p.ResetUsage()
	if got := p.GetUsage(); got.InputTokens != 0 || got.TotalCost != 0 {
		t.Errorf("usage after reset = %+v", got)
	}
}
