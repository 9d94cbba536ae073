package models

import (
	"time"

	"gorm.io/gorm"
)

// Testimonial is a read-mostly content record shown on the landing page.
type Testimonial struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name      string         `json:"name" example:"Jane Smith"`
	Role      string         `json:"role" example:"Restaurant Owner"`
	Content   string         `json:"content"`
	Avatar    string         `json:"avatar,omitempty"`
}
