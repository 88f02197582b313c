package llm

import (
	"context"
	"fmt"
	"mimir_backend/internal/config"

	"go.uber.org/zap"
)

// NewProvider 根据配置创建提供方，并包一层调用日志
func NewProvider(ctx context.Context, cfg config.AIConfig, log *zap.Logger) (Provider, error) {
	opts := Options{
		Model:           cfg.Model,
		Temperature:     cfg.Temperature,
		TopP:            cfg.TopP,
		TopK:            cfg.TopK,
		MaxOutputTokens: cfg.MaxOutputTokens,
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.APIKey, opts)
	case "openai":
		base, err = NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, opts)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.APIKey, opts)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, log), nil
}
