package mocks

import (
	"time"

	"unityeats/internal/models"
	"unityeats/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Shared MockDonationRepository
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) Create(donation *models.Donation) error {
	args := m.Called(donation)
	return args.Error(0)
}

func (m *MockDonationRepository) FindByID(id string) (*models.Donation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Donation), args.Error(1)
}

func (m *MockDonationRepository) Find(filter repository.DonationFilter) ([]models.Donation, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Donation), args.Error(1)
}

func (m *MockDonationRepository) UpdateStatus(id string, from, to models.DonationStatus, ngoID *string) error {
	args := m.Called(id, from, to, ngoID)
	return args.Error(0)
}

func (m *MockDonationRepository) FindExpirable(now time.Time) ([]models.Donation, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Donation), args.Error(1)
}

// Shared MockNGORepository
type MockNGORepository struct {
	mock.Mock
}

func (m *MockNGORepository) CreateProfile(profile *models.NGOProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockNGORepository) FindVerified() ([]models.NGO, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NGO), args.Error(1)
}

func (m *MockNGORepository) FindByUserID(userID string) (*models.NGO, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NGO), args.Error(1)
}

func (m *MockNGORepository) SetVerificationStatus(userID string, status models.VerificationStatus) error {
	args := m.Called(userID, status)
	return args.Error(0)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) PatchUser(id string, data map[string]interface{}) error {
	args := m.Called(id, data)
	return args.Error(0)
}

func (m *MockUserRepository) SetUserVerified(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(email, passwordHash string) error {
	args := m.Called(email, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

// Shared MockVerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) CreateVerification(verification *models.Verification) error {
	args := m.Called(verification)
	return args.Error(0)
}

func (m *MockVerificationRepository) FindByEmailAndCode(email, code string) (*models.Verification, error) {
	args := m.Called(email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Verification), args.Error(1)
}

func (m *MockVerificationRepository) DeleteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

// Shared MockResetPasswordRepository
type MockResetPasswordRepository struct {
	mock.Mock
}

func (m *MockResetPasswordRepository) CreateResetPassword(reset *models.ResetPassword) error {
	args := m.Called(reset)
	return args.Error(0)
}

func (m *MockResetPasswordRepository) FindByEmailAndCode(email, code string) (*models.ResetPassword, error) {
	args := m.Called(email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResetPassword), args.Error(1)
}

func (m *MockResetPasswordRepository) DeleteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

// Shared MockTestimonialRepository
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(testimonial *models.Testimonial) error {
	args := m.Called(testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) FindAll() ([]models.Testimonial, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonial), args.Error(1)
}
