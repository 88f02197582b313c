package controller

import (
	"mimir_backend/internal/service"
	"mimir_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// @Summary 生成课程
// @Description 为已解锁的某一天生成课程，每天只能生成一次
// @Tags 生成
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.GenerateLessonRequest true "课程信息"
// @Success 200 {object} LessonSummaryResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse "当天未解锁"
// @Failure 404 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse "课程已存在"
// @Failure 500 {object} util.ErrorResponse
// @Router /api/generate-lesson [post]
func (c *LessonController) GenerateLesson(ctx *gin.Context) {
	var req service.GenerateLessonRequest
	if err := util.BindJSON(ctx, &req); err != nil {
		util.RespondError(ctx, err)
		return
	}

	summary, err := c.LessonService.Generate(ctx.Request.Context(), util.CurrentUserID(ctx), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"lesson": summary})
}

// @Summary 获取课程
// @Tags 生成
// @Produce json
// @Security BearerAuth
// @Param bootcampId query string true "训练营ID"
// @Param dayNumber query int true "天数"
// @Success 200 {object} LessonResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/generate-lesson [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	var q service.GetLessonQuery
	if err := util.BindQuery(ctx, &q); err != nil {
		util.RespondError(ctx, err)
		return
	}

	lesson, err := c.LessonService.Get(ctx.Request.Context(), util.CurrentUserID(ctx), q)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"lesson": lesson})
}
