package app

import (
	"study_planner_backend/docs"
	"study_planner_backend/internal/config"
	"study_planner_backend/internal/middleware"
	"study_planner_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		// 计划生成：匿名可用（需内联 workItems），登录用户可走作业流
		public.POST("/work-plan/optimize", middleware.TryAuthMiddleware(cfg), c.workPlan.Optimize)
		public.POST("/study-plan/optimize", middleware.TryAuthMiddleware(cfg), c.workPlan.Optimize)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/work-plan/latest", c.workPlan.Latest)
		authGroup.GET("/work-items", c.workItem.List)
		authGroup.PUT("/work-items/sync", c.workItem.Sync)
	}
}
