package util

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind 业务错误分类，只在控制器边界映射为HTTP状态码
type ErrorKind string

const (
	KindInputValidation ErrorKind = "input_validation"
	KindBadRequest      ErrorKind = "bad_request"
	KindNotFound        ErrorKind = "not_found"
	KindForbidden       ErrorKind = "forbidden"
	KindConflict        ErrorKind = "conflict"
	KindGeneration      ErrorKind = "generation"
	KindPersistence     ErrorKind = "persistence"
)

var (
	ErrBootcampNotFound     = errors.New("bootcamp not found")
	ErrLessonNotFound       = errors.New("lesson not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrLessonExists         = errors.New("lesson already exists for this day")
	ErrActivitiesExist      = errors.New("activities already exist for this lesson")
	ErrGenerationInProgress = errors.New("generation already in progress")
)

// FieldIssue 单个字段的校验问题
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError 携带分类的业务错误
type AppError struct {
	Kind    ErrorKind
	Message string
	Details interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(kind ErrorKind, err error) *AppError {
	return &AppError{Kind: kind, Message: err.Error(), Err: err}
}

func NewNotFound(err error) *AppError {
	return newAppError(KindNotFound, err)
}

func NewConflict(err error) *AppError {
	return newAppError(KindConflict, err)
}

func NewForbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewBadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

func NewValidationError(issues []FieldIssue) *AppError {
	return &AppError{Kind: KindInputValidation, Message: "Invalid request data", Details: issues}
}

// NewGenerationError 重试耗尽后的终止错误，details 为最后一次失败原因
func NewGenerationError(message string, details interface{}, err error) *AppError {
	return &AppError{Kind: KindGeneration, Message: message, Details: details, Err: err}
}

func NewPersistenceError(message string, err error) *AppError {
	return &AppError{Kind: KindPersistence, Message: message, Err: err}
}

// KindOf 返回错误分类，非 AppError 返回空
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// StatusCode 错误分类到HTTP状态码
func StatusCode(kind ErrorKind) int {
	switch kind {
	case KindInputValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
