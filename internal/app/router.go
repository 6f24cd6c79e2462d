package app

import (
	"ecotrack_backend/docs"
	"ecotrack_backend/internal/middleware"
	"ecotrack_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. public
	a.registerPublicRoutes(router, c)

	// 2. signed-in users
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware())
	{
		a.registerUserRoutes(authGroup, c)
	}

	// 3. admin
	a.registerAdminRoutes(router, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/community/stats", c.community.GetStats)
		public.GET("/tasks/catalog", c.task.GetCatalog)
	}
}

func (a *App) registerUserRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/profile", c.auth.GetProfile)
	group.GET("/profile/summary", c.dashboard.GetProfileSummary)
	group.GET("/dashboard", c.dashboard.GetDashboard)
	group.GET("/stats", c.dashboard.GetStats)

	tasks := group.Group("/tasks")
	{
		tasks.GET("/today", c.task.GetTodayTasks)
		tasks.POST("/complete", c.task.CompleteTask)
	}

	group.GET("/points/total", c.badge.GetTotalPoints)
	group.GET("/impact", c.badge.GetImpact)
	group.GET("/badges", c.badge.GetBadges)
	group.GET("/badges/next", c.badge.GetNextBadge)
	group.GET("/tips/random", c.tip.GetRandomTip)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/stats", c.admin.GetStats)
		admin.GET("/users", c.admin.GetUsers)
		admin.GET("/tips", c.tip.ListTips)
		admin.POST("/tips", c.tip.CreateTip)
		admin.DELETE("/tips/:id", c.tip.DeleteTip)
	}
}
