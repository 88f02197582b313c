package generator

import (
	"context"
	"mimir_backend/internal/llm"
	"mimir_backend/internal/model"
	"mimir_backend/internal/util"
	"mimir_backend/pkg/logger"
	"mimir_backend/pkg/monitoring"
	"mimir_backend/pkg/tracing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Generator 组合提示词、大模型调用与结构校验，按 Policy 重试直到得到合法内容
type Generator struct {
	provider llm.Provider
	policy   Policy
	log      *zap.Logger
}

type Option func(*Generator)

func WithPolicy(p Policy) Option {
	return func(g *Generator) { g.policy = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

func New(provider llm.Provider, opts ...Option) *Generator {
	g := &Generator{
		provider: provider,
		policy:   DefaultPolicy,
		log:      logger.Log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateSyllabus 天数与要求不一致时只记录警告
func (g *Generator) GenerateSyllabus(ctx context.Context, goal string, durationDays int) (*model.Syllabus, error) {
	prompt := SyllabusPrompt(goal, durationDays)
	syllabus, err := run(ctx, g, util.ContentSyllabus, prompt, ParseSyllabus)
	if err != nil {
		return nil, err
	}

	if len(syllabus.Days) != durationDays {
		g.log.Warn("Syllabus day count mismatch",
			zap.Int("expected", durationDays),
			zap.Int("actual", len(syllabus.Days)))
	}
	return syllabus, nil
}

// GenerateLesson 返回去空白后的 Markdown 正文
func (g *Generator) GenerateLesson(ctx context.Context, goal string, dayNumber int, dayTitle string, topics []string) (string, error) {
	prompt := LessonPrompt(goal, dayNumber, dayTitle, topics)
	return run(ctx, g, util.ContentLesson, prompt, ValidateLesson)
}

// GenerateActivities 成功时恰好返回4道练习
func (g *Generator) GenerateActivities(ctx context.Context, lessonContent string) ([]ActivityDraft, error) {
	prompt := ActivitiesPrompt(lessonContent)
	return run(ctx, g, util.ContentActivities, prompt, ParseActivities)
}

// run 提示词在多次尝试间保持不变
func run[T any](ctx context.Context, g *Generator, contentType, prompt string, parse func(string) (T, error)) (T, error) {
	start := time.Now()
	ctx, span := tracing.Tracer.Start(ctx, "generate "+contentType)
	defer span.End()

	v, err := Retry(ctx, contentType, g.policy, func(ctx context.Context, n int) (T, error) {
		var zero T
		resp, err := g.provider.Generate(ctx, prompt)
		if err == nil {
			var parsed T
			parsed, err = parse(resp.Text)
			if err == nil {
				monitoring.RecordAttempt(contentType, monitoring.OutcomeSuccess)
				span.SetAttributes(attribute.Int("generation.attempts", n))
				return parsed, nil
			}
		}

		outcome := outcomeOf(err)
		monitoring.RecordAttempt(contentType, outcome)
		g.log.Warn("Generation attempt failed",
			zap.String("content_type", contentType),
			zap.Int("attempt", n),
			zap.Int("max_attempts", g.policy.MaxAttempts),
			zap.String("outcome", outcome),
			zap.Error(err))
		return zero, err
	})
	monitoring.ObserveGeneration(contentType, time.Since(start))

	if err != nil {
		tracing.RecordError(span, err, attribute.String("generation.content_type", contentType))
		g.log.Error("Generation failed",
			zap.String("content_type", contentType),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
	}
	return v, err
}
