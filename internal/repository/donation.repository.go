package repository

import (
	"errors"
	"time"

	"unityeats/internal/models"

	"gorm.io/gorm"
)

// ErrStatusConflict is returned when a conditional status update matched no
// row: the donation changed state between the read and the write, e.g. two
// NGOs raced to accept it.
var ErrStatusConflict = errors.New("donation status changed concurrently")

// DonationFilter is an exact-match predicate over donations. Zero-valued
// fields are ignored. Available is shorthand for pending with no NGO bound.
type DonationFilter struct {
	Status    models.DonationStatus
	DonorID   string
	NgoID     string
	Available bool
}

type DonationRepository interface {
	Create(donation *models.Donation) error
	FindByID(id string) (*models.Donation, error)
	Find(filter DonationFilter) ([]models.Donation, error)
	UpdateStatus(id string, from, to models.DonationStatus, ngoID *string) error
	FindExpirable(now time.Time) ([]models.Donation, error)
}

type donationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db}
}

func (r *donationRepository) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

func (r *donationRepository) FindByID(id string) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.Where("id = ?", id).First(&donation).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) Find(filter DonationFilter) ([]models.Donation, error) {
	var donations []models.Donation

	query := r.db.Order("created_at DESC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DonorID != "" {
		query = query.Where("donor_id = ?", filter.DonorID)
	}
	if filter.NgoID != "" {
		query = query.Where("ngo_id = ?", filter.NgoID)
	}
	if filter.Available {
		query = query.Where("status = ? AND ngo_id IS NULL", models.DonationPending)
	}

	err := query.Find(&donations).Error
	return donations, err
}

// UpdateStatus persists a transition with a conditional update: the row must
// still be in the from state (and unbound, when accepting) or nothing is
// written. A lost race therefore surfaces as ErrStatusConflict instead of a
// silent double-accept.
func (r *donationRepository) UpdateStatus(id string, from, to models.DonationStatus, ngoID *string) error {
	query := r.db.Model(&models.Donation{}).Where("id = ? AND status = ?", id, from)

	updates := map[string]interface{}{"status": to}
	if to == models.DonationAccepted {
		query = query.Where("ngo_id IS NULL")
		updates["ngo_id"] = ngoID
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *donationRepository) FindExpirable(now time.Time) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.Where("status IN ? AND expiry_date < ?",
		[]models.DonationStatus{models.DonationPending, models.DonationAccepted}, now).
		Find(&donations).Error
	return donations, err
}
