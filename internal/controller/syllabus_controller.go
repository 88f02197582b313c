package controller

import (
	"mimir_backend/internal/service"
	"mimir_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SyllabusController struct {
	BootcampService *service.BootcampService
}

func NewSyllabusController(bootcampService *service.BootcampService) *SyllabusController {
	return &SyllabusController{BootcampService: bootcampService}
}

// @Summary 生成大纲
// @Description 根据学习目标和天数生成逐日大纲，不落库
// @Tags 生成
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.GenerateSyllabusRequest true "目标与天数"
// @Success 200 {object} SyllabusResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/generate-syllabus [post]
func (c *SyllabusController) GenerateSyllabus(ctx *gin.Context) {
	var req service.GenerateSyllabusRequest
	if err := util.BindJSON(ctx, &req); err != nil {
		util.RespondError(ctx, err)
		return
	}

	syllabus, err := c.BootcampService.GenerateSyllabus(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"syllabus": syllabus,
		"goal":     req.Goal,
		"duration": req.Duration,
	})
}
