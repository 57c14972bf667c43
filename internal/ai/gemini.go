package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

type GeminiProvider struct {
	client      *genai.Client
	usage       Usage
	inputPrice  float64 // per 1M tokens
	outputPrice float64 // per 1M tokens
}

func NewGeminiProvider(ctx context.Context, apiKey string, pricing RequestPricing) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		inputPrice:  pricing.Input,
		outputPrice: pricing.Output,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return geminiModel
}

func (p *GeminiProvider) GetUsage() *Usage {
	return &p.usage
}

func (p *GeminiProvider) ResetUsage() {
	p.usage = Usage{}
}

func (p *GeminiProvider) trackUsage(inputTokens, outputTokens int32) {
	p.usage.InputTokens += int(inputTokens)
	p.usage.OutputTokens += int(outputTokens)
	p.usage.TotalCost += float64(inputTokens) / 1_000_000 * p.inputPrice
	p.usage.TotalCost += float64(outputTokens) / 1_000_000 * p.outputPrice
}

// completeJSON runs one JSON-mode generation, unmarshalling into out. On a
// parse failure the model gets the error back and another chance.
func (p *GeminiProvider) completeJSON(ctx context.Context, systemPrompt, userMessage string, out any) error {
	const maxRetries = 5

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: systemPrompt + "\n\n" + userMessage},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	var lastError error
	var lastResponse string

	for range maxRetries {
		result, err := p.client.Models.GenerateContent(ctx, geminiModel, contents, config)
		if err != nil {
			return fmt.Errorf("gemini API error: %w", err)
		}

		if result.UsageMetadata != nil {
			p.trackUsage(result.UsageMetadata.PromptTokenCount, result.UsageMetadata.CandidatesTokenCount)
		}

		content := result.Text()
		if content == "" {
			return errors.New("no response from Gemini")
		}
		lastResponse = content

		if err := json.Unmarshal([]byte(content), out); err != nil {
			lastError = err

			contents = append(contents,
				&genai.Content{
					Role:  "model",
					Parts: []*genai.Part{{Text: content}},
				},
				&genai.Content{
					Role:  "user",
					Parts: []*genai.Part{{Text: fmt.Sprintf("JSON parse error: %v. Please fix the JSON and try again. Remember to escape quotes inside strings with backslash.", err)}},
				},
			)
			continue
		}

		return nil
	}

	return fmt.Errorf("failed to parse JSON after %d attempts: %w (last response: %s)", maxRetries, lastError, lastResponse)
}

func (p *GeminiProvider) SuggestTitles(ctx context.Context, brief BookBrief, count int) ([]TitleSuggestion, error) {
	var list titleSuggestionList
	if err := p.completeJSON(ctx, buildTitlesPrompt(count), buildBriefContent(brief), &list); err != nil {
		return nil, err
	}
	return list.Suggestions, nil
}

func (p *GeminiProvider) SuggestColorScheme(ctx context.Context, brief BookBrief, schemes []string) (*ColorSchemeSuggestion, error) {
	var suggestion ColorSchemeSuggestion
	if err := p.completeJSON(ctx, buildColorSchemePrompt(schemes), buildBriefContent(brief), &suggestion); err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (p *GeminiProvider) GenerateDescription(ctx context.Context, brief BookBrief) (string, error) {
	var result textResult
	if err := p.completeJSON(ctx, descriptionPrompt, buildBriefContent(brief), &result); err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Text), nil
}

func (p *GeminiProvider) GenerateKeywords(ctx context.Context, brief BookBrief, count int) ([]string, error) {
	var list keywordList
	if err := p.completeJSON(ctx, buildKeywordsPrompt(count), buildBriefContent(brief), &list); err != nil {
		return nil, err
	}
	return list.Keywords, nil
}

func (p *GeminiProvider) GenerateBackCoverCopy(ctx context.Context, brief BookBrief) (string, error) {
	var result textResult
	if err := p.completeJSON(ctx, backCoverPrompt, buildBriefContent(brief), &result); err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Text), nil
}

func (p *GeminiProvider) Proofread(ctx context.Context, text string) (*ProofreadResult, error) {
	var result ProofreadResult
	if err := p.completeJSON(ctx, proofreadPrompt, text, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
