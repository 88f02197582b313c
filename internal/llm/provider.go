package llm

import "context"

// Provider 大模型文本补全的抽象。一次 Generate 只发起一次外部调用，不重试也不校验内容
type Provider interface {
	Generate(ctx context.Context, prompt string) (*Response, error)
	ModelID() string
}

// Options 各提供方共用的采样参数
type Options struct {
	Model           string
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

type Response struct {
	Text  string
	Model string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}
