package controller

import (
	"mimir_backend/internal/service"
	"mimir_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// @Summary 生成练习
// @Description 为课程生成4道练习，每节课只能生成一次
// @Tags 生成
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.GenerateActivitiesRequest true "课程ID"
// @Success 200 {object} ActivitiesResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse "练习已存在"
// @Failure 500 {object} util.ErrorResponse
// @Router /api/generate-activities [post]
func (c *ActivityController) GenerateActivities(ctx *gin.Context) {
	var req service.GenerateActivitiesRequest
	if err := util.BindJSON(ctx, &req); err != nil {
		util.RespondError(ctx, err)
		return
	}

	activities, err := c.ActivityService.Generate(ctx.Request.Context(), util.CurrentUserID(ctx), req.LessonID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"activities": activities,
		"count":      len(activities),
	})
}

// @Summary 获取练习
// @Tags 生成
// @Produce json
// @Security BearerAuth
// @Param lessonId query string true "课程ID"
// @Success 200 {object} ActivitiesResponse
// @Failure 400 {object} util.ErrorResponse
// @Router /api/generate-activities [get]
func (c *ActivityController) ListActivities(ctx *gin.Context) {
	var q service.ListActivitiesQuery
	if err := util.BindQuery(ctx, &q); err != nil {
		util.RespondError(ctx, err)
		return
	}

	activities, err := c.ActivityService.List(ctx.Request.Context(), util.CurrentUserID(ctx), q.LessonID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"activities": activities,
		"count":      len(activities),
	})
}

// @Summary 显示/隐藏答案
// @Tags 练习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Param request body service.RevealActivityRequest true "是否显示"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/activities/{id}/reveal [patch]
func (c *ActivityController) RevealActivity(ctx *gin.Context) {
	var req service.RevealActivityRequest
	if err := util.BindJSON(ctx, &req); err != nil {
		util.RespondError(ctx, err)
		return
	}

	activity, err := c.ActivityService.Reveal(ctx.Request.Context(), util.CurrentUserID(ctx), ctx.Param("id"), *req.Revealed)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"activity": activity})
}
