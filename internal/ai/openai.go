package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const defaultOpenAIModel = openai.ChatModelGPT4_1Mini

// GroqBaseURL points the OpenAI-compatible client at Groq.
const GroqBaseURL = "https://api.groq.com/openai/v1"

type OpenAIProvider struct {
	client      *openai.Client
	model       string
	usage       Usage
	inputPrice  float64 // per 1M tokens
	outputPrice float64 // per 1M tokens
}

// NewOpenAIProvider creates a provider against api.openai.com or any
// OpenAI-compatible endpoint (set baseURL, e.g. GroqBaseURL). model falls
// back to a default when empty.
func NewOpenAIProvider(apiKey, model, baseURL string, pricing RequestPricing) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		client:      &client,
		model:       model,
		inputPrice:  pricing.Input,
		outputPrice: pricing.Output,
	}
}

func (p *OpenAIProvider) Name() string {
	return p.model
}

func (p *OpenAIProvider) GetUsage() *Usage {
	return &p.usage
}

func (p *OpenAIProvider) ResetUsage() {
	p.usage = Usage{}
}

func (p *OpenAIProvider) trackUsage(inputTokens, outputTokens int64) {
	p.usage.InputTokens += int(inputTokens)
	p.usage.OutputTokens += int(outputTokens)
	p.usage.TotalCost += float64(inputTokens) / 1_000_000 * p.inputPrice
	p.usage.TotalCost += float64(outputTokens) / 1_000_000 * p.outputPrice
}

// completeJSON runs one JSON-mode chat completion, unmarshalling into out.
// On a parse failure the model gets the error back and another chance.
func (p *OpenAIProvider) completeJSON(ctx context.Context, systemPrompt, userMessage string, maxTokens int64, out any) error {
	const maxRetries = 5

	messages := []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(systemPrompt),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(userMessage),
				},
			},
		},
	}

	var lastError error
	var lastResponse string

	for range maxRetries {
		resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:    p.model,
			Messages: messages,
			ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
			},
			MaxTokens: openai.Int(maxTokens),
		})
		if err != nil {
			return fmt.Errorf("OpenAI API error: %w", err)
		}

		if len(resp.Choices) == 0 {
			return errors.New("no response from OpenAI")
		}

		if resp.Usage.PromptTokens > 0 || resp.Usage.CompletionTokens > 0 {
			p.trackUsage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
		}

		content := resp.Choices[0].Message.Content
		lastResponse = content

		if err := json.Unmarshal([]byte(content), out); err != nil {
			lastError = err

			messages = append(messages,
				openai.ChatCompletionMessageParamUnion{
					OfAssistant: &openai.ChatCompletionAssistantMessageParam{
						Content: openai.ChatCompletionAssistantMessageParamContentUnion{
							OfString: openai.String(content),
						},
					},
				},
				openai.ChatCompletionMessageParamUnion{
					OfUser: &openai.ChatCompletionUserMessageParam{
						Content: openai.ChatCompletionUserMessageParamContentUnion{
							OfString: openai.String(fmt.Sprintf("JSON parse error: %v. Please fix the JSON and try again. Remember to escape quotes inside strings with backslash.", err)),
						},
					},
				},
			)
			continue
		}

		return nil
	}

	return fmt.Errorf("failed to parse JSON after %d attempts: %w (last response: %s)", maxRetries, lastError, lastResponse)
}

func (p *OpenAIProvider) SuggestTitles(ctx context.Context, brief BookBrief, count int) ([]TitleSuggestion, error) {
	var list titleSuggestionList
	if err := p.completeJSON(ctx, buildTitlesPrompt(count), buildBriefContent(brief), 1000, &list); err != nil {
		return nil, err
	}
	return list.Suggestions, nil
}

func (p *OpenAIProvider) SuggestColorScheme(ctx context.Context, brief BookBrief, schemes []string) (*ColorSchemeSuggestion, error) {
	var suggestion ColorSchemeSuggestion
	if err := p.completeJSON(ctx, buildColorSchemePrompt(schemes), buildBriefContent(brief), 200, &suggestion); err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (p *OpenAIProvider) GenerateDescription(ctx context.Context, brief BookBrief) (string, error) {
	var result textResult
	if err := p.completeJSON(ctx, descriptionPrompt, buildBriefContent(brief), 600, &result); err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Text), nil
}

func (p *OpenAIProvider) GenerateKeywords(ctx context.Context, brief BookBrief, count int) ([]string, error) {
	var list keywordList
	if err := p.completeJSON(ctx, buildKeywordsPrompt(count), buildBriefContent(brief), 400, &list); err != nil {
		return nil, err
	}
	return list.Keywords, nil
}

func (p *OpenAIProvider) GenerateBackCoverCopy(ctx context.Context, brief BookBrief) (string, error) {
	var result textResult
	if err := p.completeJSON(ctx, backCoverPrompt, buildBriefContent(brief), 400, &result); err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Text), nil
}

func (p *OpenAIProvider) Proofread(ctx context.Context, text string) (*ProofreadResult, error) {
	var result ProofreadResult
	if err := p.completeJSON(ctx, proofreadPrompt, text, 4000, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
