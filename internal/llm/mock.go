package llm

import (
	"context"
	"sync"
)

// MockResponse 预置的返回，Err 非空时返回错误
type MockResponse struct {
	Text string
	Err  error
}

// MockProvider 按先进先出返回预置响应，并记录所有提示词。
// 队列为空时返回 Fallback；Fallback 也为空则返回 ProviderError
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Fallback  func(prompt string) (string, error)
	Prompts   []string
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Generate(ctx context.Context, prompt string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, newProviderError("mock", 0, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if len(m.responses) == 0 {
		if m.Fallback == nil {
			return nil, newProviderError("mock", 0, ErrEmptyResponse)
		}
		text, err := m.Fallback(prompt)
		if err != nil {
			return nil, err
		}
		return &Response{Text: text, Model: "mock"}, nil
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{Text: resp.Text, Model: "mock"}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
