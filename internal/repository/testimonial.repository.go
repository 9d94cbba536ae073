package repository

import (
	"unityeats/internal/models"

	"gorm.io/gorm"
)

type TestimonialRepository interface {
	Create(testimonial *models.Testimonial) error
	FindAll() ([]models.Testimonial, error)
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db}
}

func (r *testimonialRepository) Create(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

func (r *testimonialRepository) FindAll() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Order("created_at DESC").Find(&testimonials).Error
	return testimonials, err
}
