package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleDonor UserRole = "donor"
	RoleNGO   UserRole = "ngo"
	RoleAdmin UserRole = "admin"
)

// User mirrors the profile held by the identity provider. Role is fixed at
// registration; no endpoint changes it afterwards.
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id" example:"5f8d7a2e-0b1c-4e3d-9a6f-1c2b3d4e5f60"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Name      string    `json:"name" example:"John Doe"`
	Email     string    `gorm:"unique" json:"email" example:"john@example.com"`
	Password  string    `json:"-"`
	Role      UserRole  `gorm:"type:varchar(16)" json:"role" example:"donor"`
	Phone     string    `json:"phone,omitempty" example:"123-456-7890"`
	Address   string    `json:"address,omitempty" example:"123 Main St, Anytown"`
	Avatar    string    `json:"avatar,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Website   string    `json:"website,omitempty"`
	Verified  bool      `gorm:"default:false" json:"verified"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
