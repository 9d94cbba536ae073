package routes

import (
	"unityeats/internal/controllers"
	"unityeats/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNGORoutes(router *gin.Engine, ngoController *controllers.NGOController) {
	ngoRoutesPublic := router.Group("/ngos")
	{
		ngoRoutesPublic.GET("/", ngoController.ListNGOs)
		ngoRoutesPublic.GET("/search", ngoController.SearchNGOs)
		ngoRoutesPublic.GET("/:id", ngoController.GetNGOByID)
	}
	ngoRoutesPrivate := router.Group("/ngos")
	ngoRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		ngoRoutesPrivate.PATCH("/:id/verification", ngoController.UpdateVerification)
	}
}
