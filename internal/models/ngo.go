package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// ServiceAreas is stored as a jsonb column.
type ServiceAreas []string

func (s ServiceAreas) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *ServiceAreas) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported service_areas column type %T", value)
	}
}

// NGOProfile holds the organization attributes layered on top of a User with
// role "ngo". Only profiles with verification_status = verified are
// discoverable through the directory.
type NGOProfile struct {
	ID                 uint               `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt          time.Time          `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt          time.Time          `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	UserID             string             `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	User               User               `gorm:"foreignKey:UserID" json:"-"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(16);default:pending" json:"verification_status" example:"pending"`
	CoverImage         string             `json:"cover_image,omitempty"`
	ServiceAreas       ServiceAreas       `gorm:"type:jsonb" json:"service_areas,omitempty"`
}

func (p *NGOProfile) BeforeCreate(tx *gorm.DB) error {
	if p.VerificationStatus == "" {
		p.VerificationStatus = VerificationPending
	}
	return nil
}

// NGO is the directory read model: user fields joined with the profile.
// It is not a table of its own.
type NGO struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone,omitempty"`
	Address            string             `json:"address,omitempty"`
	Avatar             string             `json:"avatar,omitempty"`
	Bio                string             `json:"bio,omitempty"`
	Website            string             `json:"website,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	CoverImage         string             `json:"cover_image,omitempty"`
	ServiceAreas       ServiceAreas       `gorm:"type:jsonb" json:"service_areas,omitempty"`
}
