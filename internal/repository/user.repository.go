package repository

import (
	"unityeats/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	UpdateUser(user *models.User) error
	PatchUser(id string, data map[string]interface{}) error
	SetUserVerified(email string) error
	UpdatePassword(email, passwordHash string) error
	EmailExists(email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) CreateUser(user *models.User) error {
	user.Verified = false
	return r.db.Create(user).Error
}

func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) PatchUser(id string, data map[string]interface{}) error {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return err
	}
	return r.db.Model(&user).Updates(data).Error
}

func (r *userRepository) SetUserVerified(email string) error {
	return r.db.Model(&models.User{}).Where("email = ?", email).Update("verified", true).Error
}

func (r *userRepository) UpdatePassword(email, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("email = ?", email).Update("password", passwordHash).Error
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
