package routes

import (
	"unityeats/internal/controllers"
	"unityeats/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTestimonialRoutes(router *gin.Engine, testimonialController *controllers.TestimonialController) {
	testimonialRoutes := router.Group("/testimonials")
	{
		testimonialRoutes.GET("/", testimonialController.ListTestimonials)
	}
	testimonialRoutesPrivate := router.Group("/testimonials")
	testimonialRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		testimonialRoutesPrivate.POST("/", testimonialController.CreateTestimonial)
	}
}
