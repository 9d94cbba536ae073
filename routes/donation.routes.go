package routes

import (
	"unityeats/internal/controllers"
	"unityeats/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDonationRoutes(router *gin.Engine, donationController *controllers.DonationController) {
	donationRoutesPublic := router.Group("/donations")
	{
		donationRoutesPublic.GET("/", donationController.ListDonations)
		donationRoutesPublic.GET("/stats", donationController.GetDonationStats)
		donationRoutesPublic.GET("/:id", donationController.GetDonationByID)
	}
	donationRoutesPrivate := router.Group("/donations")
	donationRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		donationRoutesPrivate.POST("/", donationController.CreateDonation)
		donationRoutesPrivate.PATCH("/:id/status", donationController.UpdateDonationStatus)
	}
}
