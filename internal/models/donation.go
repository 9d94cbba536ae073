package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationAccepted  DonationStatus = "accepted"
	DonationCollected DonationStatus = "collected"
	DonationExpired   DonationStatus = "expired"
)

// Donation is the core record of the system. DonorID is fixed at creation.
// NgoID stays NULL while the donation is pending and is bound exactly once,
// at the transition to accepted. Donations are never deleted.
type Donation struct {
	ID         string         `gorm:"type:uuid;primaryKey" json:"id" example:"1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	FoodItem   string         `json:"food_item" example:"Rice"`
	Quantity   float64        `json:"quantity" example:"25"`
	Unit       string         `json:"unit" example:"kg"`
	ExpiryDate time.Time      `json:"expiry_date" example:"2023-02-01T00:00:00Z"`
	Address    string         `json:"address" example:"456 Oak St"`
	Status     DonationStatus `gorm:"type:varchar(16);default:pending;index" json:"status" example:"pending"`
	DonorID    string         `gorm:"type:uuid;index" json:"donor_id"`
	Donor      User           `gorm:"foreignKey:DonorID" json:"-"`
	NgoID      *string        `gorm:"type:uuid;index" json:"ngo_id,omitempty"`
	Notes      string         `json:"notes,omitempty"`
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// EffectiveStatus reports the status as of now: a pending or accepted
// donation whose expiry date has passed reads as expired even before the
// sweep worker has persisted the transition.
func (d Donation) EffectiveStatus(now time.Time) DonationStatus {
	if (d.Status == DonationPending || d.Status == DonationAccepted) && now.After(d.ExpiryDate) {
		return DonationExpired
	}
	return d.Status
}
