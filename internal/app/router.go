package app

import (
	"github.com/javier223222/soft-skills-practice-api/docs"
	"github.com/javier223222/soft-skills-practice-api/internal/config"
	"github.com/javier223222/soft-skills-practice-api/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.Title = cfg.API.Title
	docs.SwaggerInfo.Version = cfg.API.Version
	docs.SwaggerInfo.Description = cfg.API.Description
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"service": cfg.API.Title,
			"version": cfg.API.Version,
			"status":  "running",
		})
	})

	router.GET("/health", c.health.HealthCheck)

	skills := router.Group("/soft-skills")
	{
		skills.GET("", c.softSkill.ListSoftSkills)
		skills.GET("/:id", c.softSkill.GetSoftSkill)
		skills.GET("/:id/scenarios", c.softSkill.ListScenarios)
	}

	practice := router.Group("/practice")
	{
		practice.POST("/start", c.practice.StartPractice)
		practice.POST("/submit", c.practice.SubmitPractice)
	}

	progress := router.Group("/progress")
	{
		progress.GET("/:user_id", c.progress.GetUserProgress)
		progress.GET("/:user_id/soft-skills/:skill_id", c.progress.GetSkillProgress)
	}
}
