package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mimir_backend/internal/llm"
	"mimir_backend/pkg/monitoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(responses ...llm.MockResponse) (*Generator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, WithPolicy(noDelay)), mock
}

func TestGenerateSyllabusAlwaysInvalidMakesThreeAttempts(t *testing.T) {
	g, mock := newTestGenerator(
		llm.MockResponse{Text: "not json"},
		llm.MockResponse{Text: "still not json"},
		llm.MockResponse{Text: "{broken"},
		llm.MockResponse{Text: syllabusJSON(7)},
	)

	_, err := g.GenerateSyllabus(context.Background(), "Master React Hooks", 7)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, 3, mock.CallCount())
	assert.Equal(t, 3, genErr.Attempts)
	assert.Equal(t, monitoring.OutcomeParseError, genErr.Cause())
}

func TestGenerateSyllabusSucceedsOnThirdAttempt(t *testing.T) {
	g, mock := newTestGenerator(
		llm.MockResponse{Err: &llm.ProviderError{Provider: "mock", StatusCode: 503, Err: errors.New("unavailable")}},
		llm.MockResponse{Text: `{"days":[{"day":1,"title":"","description":"d","topics":["a"]}]}`},
		llm.MockResponse{Text: "```json\n" + syllabusJSON(7) + "\n```"},
	)

	syllabus, err := g.GenerateSyllabus(context.Background(), "Master React Hooks", 7)
	require.NoError(t, err)
	assert.Len(t, syllabus.Days, 7)
	assert.Equal(t, 3, mock.CallCount())
}

func TestGenerateSyllabusToleratesDayCountMismatch(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Text: syllabusJSON(5)})

	syllabus, err := g.GenerateSyllabus(context.Background(), "Learn Go", 7)
	require.NoError(t, err)
	assert.Len(t, syllabus.Days, 5)
}

func TestGenerateSyllabusPromptIsStableAcrossAttempts(t *testing.T) {
	g, mock := newTestGenerator(
		llm.MockResponse{Text: "nope"},
		llm.MockResponse{Text: syllabusJSON(7)},
	)

	_, err := g.GenerateSyllabus(context.Background(), "Learn Go", 7)
	require.NoError(t, err)
	require.Len(t, mock.Prompts, 2)
	assert.Equal(t, mock.Prompts[0], mock.Prompts[1])
}

func TestGenerateLessonRetriesShortContent(t *testing.T) {
	g, mock := newTestGenerator(
		llm.MockResponse{Text: "Too short."},
		llm.MockResponse{Text: "  " + longLesson + "  "},
	)

	content, err := g.GenerateLesson(context.Background(), "Master React Hooks", 1, "useState", []string{"state", "setters"})
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(longLesson), content)
	assert.Equal(t, 2, mock.CallCount())
	assert.Contains(t, mock.Prompts[0], "1. state")
	assert.Contains(t, mock.Prompts[0], "DAY 1: useState")
}

func TestGenerateLessonProviderFailureIsTerminal(t *testing.T) {
	providerErr := &llm.ProviderError{Provider: "mock", StatusCode: 429, Err: errors.New("quota")}
	g, mock := newTestGenerator(
		llm.MockResponse{Err: providerErr},
		llm.MockResponse{Err: providerErr},
		llm.MockResponse{Err: providerErr},
	)

	_, err := g.GenerateLesson(context.Background(), "Goal", 1, "Title", []string{"a"})

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, monitoring.OutcomeProviderError, genErr.Cause())
	assert.Equal(t, 3, mock.CallCount())

	var got *llm.ProviderError
	require.ErrorAs(t, err, &got)
	assert.True(t, got.RateLimited())
}

func TestGenerateActivitiesSchemaFailure(t *testing.T) {
	three := `[{"question":"q","answer":"a"},{"question":"q","answer":"a"},{"question":"q","answer":"a"}]`
	g, mock := newTestGenerator(
		llm.MockResponse{Text: three},
		llm.MockResponse{Text: three},
		llm.MockResponse{Text: three},
	)

	_, err := g.GenerateActivities(context.Background(), longLesson)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, monitoring.OutcomeSchemaError, genErr.Cause())
	assert.Equal(t, 3, mock.CallCount())
	assert.Contains(t, mock.Prompts[0], longLesson)
}

func TestGenerateActivities(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Text: activitiesJSON})

	drafts, err := g.GenerateActivities(context.Background(), longLesson)
	require.NoError(t, err)
	assert.Len(t, drafts, 4)
}
