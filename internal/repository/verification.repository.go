package repository

import (
	"log"
	"time"

	"unityeats/internal/models"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	CreateVerification(verification *models.Verification) error
	FindByEmailAndCode(email, code string) (*models.Verification, error)
	DeleteByEmail(email string) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db}
}

func (r *verificationRepository) CreateVerification(verification *models.Verification) error {
	return r.db.Create(verification).Error
}

func (r *verificationRepository) FindByEmailAndCode(email, code string) (*models.Verification, error) {
	var verification models.Verification
	err := r.db.Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
		First(&verification).Error
	if err != nil {
		return nil, err
	}
	return &verification, nil
}

func (r *verificationRepository) DeleteByEmail(email string) error {
	result := r.db.Unscoped().Where("email = ?", email).Delete(&models.Verification{})
	if result.Error != nil {
		log.Println("Error deleting verification:", result.Error)
	}
	return result.Error
}
