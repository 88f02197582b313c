package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMockProviderQueueThenFallback(t *testing.T) {
	m := NewMockProvider(MockResponse{Text: "first"}, MockResponse{Err: errors.New("boom")})
	ctx := context.Background()

	resp, err := m.Generate(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text)

	_, err = m.Generate(ctx, "p2")
	assert.EqualError(t, err, "boom")

	_, err = m.Generate(ctx, "p3")
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, ErrEmptyResponse)

	m.Fallback = func(prompt string) (string, error) { return "echo " + prompt, nil }
	resp, err = m.Generate(ctx, "p4")
	require.NoError(t, err)
	assert.Equal(t, "echo p4", resp.Text)

	assert.Equal(t, 4, m.CallCount())
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, m.Prompts)
}

func TestMockProviderHonoursCancelledContext(t *testing.T) {
	m := NewMockProvider(MockResponse{Text: "unused"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, "p")
	assert.ErrorIs(t, err, context.Canceled)
}

func newOpenAITestProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewOpenAIProvider("test-key", srv.URL+"/v1", Options{Model: "gpt-test", MaxOutputTokens: 256})
	require.NoError(t, err)
	return p
}

func TestOpenAIProviderGenerate(t *testing.T) {
	p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-test",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "hello"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 7, "completion_tokens": 3, "total_tokens": 10}
		}`))
	})

	resp, err := p.Generate(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)
	assert.Equal(t, "gpt-test", resp.Model)
	assert.Equal(t, 10, resp.Usage.Total())
}

func TestOpenAIProviderMapsRateLimit(t *testing.T) {
	p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "slow down", "type": "rate_limit_error"}}`))
	})

	_, err := p.Generate(context.Background(), "p")
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, providerOpenAI, perr.Provider)
	assert.True(t, perr.RateLimited())
}

func TestOpenAIProviderEmptyChoices(t *testing.T) {
	p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "x", "model": "gpt-test", "choices": []}`))
	})

	_, err := p.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestProvidersRequireAPIKey(t *testing.T) {
	_, err := NewOpenAIProvider("", "", Options{})
	assert.Error(t, err)
	_, err = NewAnthropicProvider("", Options{})
	assert.Error(t, err)
}

func TestLoggingProviderRecordsOutcome(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := NewMockProvider(MockResponse{Text: "ok"}, MockResponse{Err: errors.New("down")})
	p := WithLogging(m, zap.New(core))

	_, err := p.Generate(context.Background(), "a")
	require.NoError(t, err)
	_, err = p.Generate(context.Background(), "b")
	require.Error(t, err)

	assert.Equal(t, 1, logs.FilterMessage("LLM request completed").Len())
	failed := logs.FilterMessage("LLM request failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "mock", failed[0].ContextMap()["model"])
	assert.Equal(t, "mock", p.ModelID())
}
