package routes

import (
	"unityeats/internal/controllers"
	"unityeats/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(router *gin.Engine, dashboardController *controllers.DashboardController) {
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware())
	{
		dashboardRoutes.GET("/", dashboardController.GetDashboard)
	}
}
