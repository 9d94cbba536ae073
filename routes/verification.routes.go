package routes

import (
	"unityeats/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterVerificationRoutes(router *gin.Engine, verificationController *controllers.VerificationController) {
	verificationRoutes := router.Group("/verify")
	{
		verificationRoutes.POST("/send", verificationController.SendVerificationCode)
		verificationRoutes.POST("/", verificationController.VerifyCode)
	}
}
