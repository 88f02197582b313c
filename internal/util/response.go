package util

import (
	"errors"
	"mimir_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 统一失败响应
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// Success 返回 {success: true, ...payload}
func Success(c *gin.Context, payload gin.H) {
	respond(c, http.StatusOK, payload)
}

func Created(c *gin.Context, payload gin.H) {
	respond(c, http.StatusCreated, payload)
}

func respond(c *gin.Context, code int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}

func Error(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, ErrorResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized", nil)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, nil)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error", nil)
}

// RespondError 按错误分类输出，未分类错误记录日志后返回500
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		logger.Log.Error("Unhandled error",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		InternalServerError(c)
		return
	}

	code := StatusCode(appErr.Kind)
	if code >= http.StatusInternalServerError {
		logger.Log.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("kind", string(appErr.Kind)),
			zap.Error(appErr))
	}
	Error(c, code, appErr.Message, appErr.Details)
}
