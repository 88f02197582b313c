package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const providerGemini = "gemini"

type GeminiProvider struct {
	client *genai.Client
	opts   Options
}

func NewGeminiProvider(ctx context.Context, apiKey string, opts Options) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, opts: opts}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (*Response, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(p.opts.Temperature)),
		TopP:            genai.Ptr(float32(p.opts.TopP)),
		MaxOutputTokens: int32(p.opts.MaxOutputTokens),
	}
	if p.opts.TopK > 0 {
		config.TopK = genai.Ptr(float32(p.opts.TopK))
	}

	result, err := p.client.Models.GenerateContent(ctx, p.opts.Model, genai.Text(prompt), config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return nil, newProviderError(providerGemini, 0, ErrEmptyResponse)
	}

	resp := &Response{Text: text, Model: p.opts.Model}
	if result.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
		}
	}
	return resp, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.opts.Model
}

// genai.APIError 以值类型返回
func mapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return newProviderError(providerGemini, apiErr.Code, err)
	}
	return newProviderError(providerGemini, 0, err)
}
