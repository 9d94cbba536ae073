package controllers

import (
	"net/http"

	"unityeats/internal/models"
	"unityeats/internal/repository"

	"github.com/gin-gonic/gin"
)

type TestimonialController struct {
	repo repository.TestimonialRepository
}

func NewTestimonialController(repo repository.TestimonialRepository) *TestimonialController {
	return &TestimonialController{repo: repo}
}

func (tc *TestimonialController) ListTestimonials(c *gin.Context) {
	testimonials, err := tc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve testimonials",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Testimonials retrieved successfully",
		"data":    testimonials,
	})
}

type CreateTestimonialRequest struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
	Avatar  string `json:"avatar"`
}

func (tc *TestimonialController) CreateTestimonial(c *gin.Context) {
	if c.GetString("role") != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Admin role required",
			"error":   "Only an administrator can publish testimonials",
		})
		return
	}

	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	testimonial := models.Testimonial{
		Name:    req.Name,
		Role:    req.Role,
		Content: req.Content,
		Avatar:  req.Avatar,
	}
	if err := tc.repo.Create(&testimonial); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create testimonial",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Testimonial created successfully",
		"data":    testimonial,
	})
}
