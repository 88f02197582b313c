package app

import (
	"mimir_backend/docs"
	"mimir_backend/internal/config"
	"mimir_backend/internal/middleware"
	"mimir_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT))
	{
		a.registerGenerationRoutes(authGroup, c)
		a.registerBootcampRoutes(authGroup, c)
	}
}

func (a *App) registerGenerationRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/generate-syllabus", c.syllabus.GenerateSyllabus)

	rg.POST("/generate-lesson", c.lesson.GenerateLesson)
	rg.GET("/generate-lesson", c.lesson.GetLesson)

	rg.POST("/generate-activities", c.activity.GenerateActivities)
	rg.GET("/generate-activities", c.activity.ListActivities)
	rg.PATCH("/activities/:id/reveal", c.activity.RevealActivity)
}

func (a *App) registerBootcampRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/bootcamps", c.bootcamp.CreateBootcamp)
	rg.GET("/bootcamps", c.bootcamp.ListBootcamps)

	bootcamp := rg.Group("/bootcamp/:id")
	{
		bootcamp.GET("", c.bootcamp.GetBootcamp)
		bootcamp.DELETE("", c.bootcamp.DeleteBootcamp)
		bootcamp.POST("/complete-day", c.bootcamp.CompleteDay)
	}
}
