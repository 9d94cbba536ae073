package repository

import (
	"unityeats/internal/models"

	"gorm.io/gorm"
)

type NGORepository interface {
	CreateProfile(profile *models.NGOProfile) error
	FindVerified() ([]models.NGO, error)
	FindByUserID(userID string) (*models.NGO, error)
	SetVerificationStatus(userID string, status models.VerificationStatus) error
}

type ngoRepository struct {
	db *gorm.DB
}

func NewNGORepository(db *gorm.DB) NGORepository {
	return &ngoRepository{db}
}

const ngoSelect = "users.id, users.name, users.email, users.phone, users.address, " +
	"users.avatar, users.bio, users.website, ngo_profiles.verification_status, " +
	"ngo_profiles.cover_image, ngo_profiles.service_areas"

func (r *ngoRepository) CreateProfile(profile *models.NGOProfile) error {
	return r.db.Create(profile).Error
}

func (r *ngoRepository) FindVerified() ([]models.NGO, error) {
	var ngos []models.NGO
	err := r.db.Table("users").
		Select(ngoSelect).
		Joins("JOIN ngo_profiles ON ngo_profiles.user_id = users.id").
		Where("ngo_profiles.verification_status = ?", models.VerificationVerified).
		Scan(&ngos).Error
	return ngos, err
}

func (r *ngoRepository) FindByUserID(userID string) (*models.NGO, error) {
	var ngo models.NGO
	err := r.db.Table("users").
		Select(ngoSelect).
		Joins("JOIN ngo_profiles ON ngo_profiles.user_id = users.id").
		Where("users.id = ?", userID).
		Scan(&ngo).Error
	if err != nil {
		return nil, err
	}
	if ngo.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &ngo, nil
}

func (r *ngoRepository) SetVerificationStatus(userID string, status models.VerificationStatus) error {
	result := r.db.Model(&models.NGOProfile{}).
		Where("user_id = ?", userID).
		Update("verification_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
