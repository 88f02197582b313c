package generator

import (
	"errors"
	"fmt"
	"mimir_backend/internal/llm"
	"mimir_backend/pkg/monitoring"
	"strings"
)

// ParseError 去掉代码围栏后仍不是合法JSON
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("response is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Issue 一条结构校验问题，Path 为 JSON Pointer
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// SchemaError 内容不符合约定结构
type SchemaError struct {
	Issues []Issue
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Path == "" {
			parts = append(parts, is.Message)
			continue
		}
		parts = append(parts, is.Path+": "+is.Message)
	}
	return "response violates schema: " + strings.Join(parts, "; ")
}

// GenerationError 重试耗尽后的终止错误，Last 为最后一次失败原因
type GenerationError struct {
	ContentType string
	Attempts    int
	Last        error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed after %d attempt(s): %v", e.ContentType, e.Attempts, e.Last)
}

func (e *GenerationError) Unwrap() error { return e.Last }

// Cause 最后一次失败的分类
func (e *GenerationError) Cause() string {
	return outcomeOf(e.Last)
}

func outcomeOf(err error) string {
	var parseErr *ParseError
	var schemaErr *SchemaError
	var providerErr *llm.ProviderError
	switch {
	case err == nil:
		return monitoring.OutcomeSuccess
	case errors.As(err, &parseErr):
		return monitoring.OutcomeParseError
	case errors.As(err, &schemaErr):
		return monitoring.OutcomeSchemaError
	case errors.As(err, &providerErr):
		return monitoring.OutcomeProviderError
	default:
		return monitoring.OutcomeProviderError
	}
}
