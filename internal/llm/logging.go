package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider 记录每次调用的耗时与用量
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

func WithLogging(p Provider, log *zap.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, prompt string) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, prompt)

	fields := []zap.Field{
		zap.String("model", l.inner.ModelID()),
		zap.Int("prompt_chars", len(prompt)),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.log.Warn("LLM request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	l.log.Debug("LLM request completed", append(fields,
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.Int("response_chars", len(resp.Text)),
	)...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
