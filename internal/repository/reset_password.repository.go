package repository

import (
	"time"

	"unityeats/internal/models"

	"gorm.io/gorm"
)

type ResetPasswordRepository interface {
	CreateResetPassword(reset *models.ResetPassword) error
	FindByEmailAndCode(email, code string) (*models.ResetPassword, error)
	DeleteByEmail(email string) error
}

type resetPasswordRepository struct {
	db *gorm.DB
}

func NewResetPasswordRepository(db *gorm.DB) ResetPasswordRepository {
	return &resetPasswordRepository{db}
}

func (r *resetPasswordRepository) CreateResetPassword(reset *models.ResetPassword) error {
	return r.db.Create(reset).Error
}

func (r *resetPasswordRepository) FindByEmailAndCode(email, code string) (*models.ResetPassword, error) {
	var reset models.ResetPassword
	err := r.db.Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *resetPasswordRepository) DeleteByEmail(email string) error {
	return r.db.Unscoped().Where("email = ?", email).Delete(&models.ResetPassword{}).Error
}
