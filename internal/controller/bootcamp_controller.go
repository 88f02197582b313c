package controller

import (
	"mimir_backend/internal/service"
	"mimir_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BootcampController struct {
	BootcampService *service.BootcampService
}

func NewBootcampController(bootcampService *service.BootcampService) *BootcampController {
	return &BootcampController{BootcampService: bootcampService}
}

// @Summary 创建训练营
// @Description 未提供大纲时自动生成
// @Tags 训练营
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateBootcampRequest true "训练营信息"
// @Success 201 {object} BootcampResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/bootcamps [post]
func (c *BootcampController) CreateBootcamp(ctx *gin.Context) {
	var req service.CreateBootcampRequest
	if err := util.BindJSON(ctx, &req); err != nil {
		util.RespondError(ctx, err)
		return
	}

	bootcamp, err := c.BootcampService.Create(ctx.Request.Context(), util.CurrentUserID(ctx), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"bootcamp": bootcamp})
}

// @Summary 我的训练营
// @Tags 训练营
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BootcampListResponse
// @Router /api/bootcamps [get]
func (c *BootcampController) ListBootcamps(ctx *gin.Context) {
	bootcamps, err := c.BootcampService.List(ctx.Request.Context(), util.CurrentUserID(ctx))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"bootcamps": bootcamps,
		"count":     len(bootcamps),
	})
}

// @Summary 训练营详情
// @Description 包含已生成课程的天数与进度
// @Tags 训练营
// @Produce json
// @Security BearerAuth
// @Param id path string true "训练营ID"
// @Success 200 {object} BootcampDetailResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/bootcamp/{id} [get]
func (c *BootcampController) GetBootcamp(ctx *gin.Context) {
	detail, err := c.BootcampService.Detail(ctx.Request.Context(), util.CurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"bootcamp": detail})
}

// @Summary 删除训练营
// @Description 同时删除所有课程和练习
// @Tags 训练营
// @Produce json
// @Security BearerAuth
// @Param id path string true "训练营ID"
// @Success 200 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/bootcamp/{id} [delete]
func (c *BootcampController) DeleteBootcamp(ctx *gin.Context) {
	if err := c.BootcampService.Delete(ctx.Request.Context(), util.CurrentUserID(ctx), ctx.Param("id")); err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 完成某一天
// @Description 只能完成当前天，成功后 current_day 加一
// @Tags 训练营
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "训练营ID"
// @Param request body service.CompleteDayRequest true "天数"
// @Success 200 {object} CompleteDayResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/bootcamp/{id}/complete-day [post]
func (c *BootcampController) CompleteDay(ctx *gin.Context) {
	var req service.CompleteDayRequest
	if err := util.BindJSON(ctx, &req); err != nil {
		util.RespondError(ctx, err)
		return
	}

	result, err := c.BootcampService.CompleteDay(ctx.Request.Context(), util.CurrentUserID(ctx), ctx.Param("id"), req.DayNumber)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"bootcamp": result})
}
