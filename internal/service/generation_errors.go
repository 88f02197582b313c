package service

import (
	"context"
	"errors"
	"mimir_backend/internal/generator"
	"mimir_backend/internal/util"

	"gorm.io/gorm"
)

// generationFailure 重试耗尽的错误统一转为500，details 带上最后一次失败原因
func generationFailure(message string, err error) error {
	var genErr *generator.GenerationError
	if errors.As(err, &genErr) {
		details := map[string]interface{}{
			"cause":    genErr.Cause(),
			"attempts": genErr.Attempts,
			"message":  genErr.Last.Error(),
		}
		var schemaErr *generator.SchemaError
		if errors.As(genErr.Last, &schemaErr) {
			details["issues"] = schemaErr.Issues
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			details["cause"] = "cancelled"
		}
		return util.NewGenerationError(message, details, err)
	}
	return util.NewGenerationError(message, err.Error(), err)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
