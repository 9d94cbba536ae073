package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"unityeats/internal/controllers"
	"unityeats/internal/mocks"
	"unityeats/internal/models"
	"unityeats/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func actAs(userID string, role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", string(role))
		c.Next()
	}
}

func setupDonationController() (*controllers.DonationController, *mocks.MockDonationRepository) {
	mockRepo := new(mocks.MockDonationRepository)
	controller := controllers.NewDonationController(mockRepo, nil, nil)
	return controller, mockRepo
}

func validDonationBody() map[string]interface{} {
	return map[string]interface{}{
		"food_item":   "Rice",
		"quantity":    25,
		"unit":        "kg",
		"expiry_date": time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
		"address":     "456 Oak St",
	}
}

func TestCreateDonation(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		role           models.UserRole
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockDonationRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful creation",
			userID:      "user1",
			role:        models.RoleDonor,
			requestBody: validDonationBody(),
			setupMock: func(m *mocks.MockDonationRepository) {
				m.On("Create", mock.AnythingOfType("*models.Donation")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Donation created successfully",
		},
		{
			name:   "missing food item",
			userID: "user1",
			role:   models.RoleDonor,
			requestBody: map[string]interface{}{
				"quantity":    25,
				"unit":        "kg",
				"expiry_date": time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
				"address":     "456 Oak St",
			},
			setupMock:      func(m *mocks.MockDonationRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:   "non-positive quantity",
			userID: "user1",
			role:   models.RoleDonor,
			requestBody: map[string]interface{}{
				"food_item":   "Rice",
				"quantity":    0,
				"unit":        "kg",
				"expiry_date": time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
				"address":     "456 Oak St",
			},
			setupMock:      func(m *mocks.MockDonationRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:           "ngo cannot create donations",
			userID:         "ngo1",
			role:           models.RoleNGO,
			requestBody:    validDonationBody(),
			setupMock:      func(m *mocks.MockDonationRepository) {},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Only donors can create donations",
		},
		{
			name:        "repository error",
			userID:      "user1",
			role:        models.RoleDonor,
			requestBody: validDonationBody(),
			setupMock: func(m *mocks.MockDonationRepository) {
				m.On("Create", mock.AnythingOfType("*models.Donation")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create donation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupDonationController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(actAs(tt.userID, tt.role))
			router.POST("/donations", controller.CreateDonation)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/donations", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateDonationDefaults(t *testing.T) {
	controller, mockRepo := setupDonationController()

	var created models.Donation
	mockRepo.On("Create", mock.AnythingOfType("*models.Donation")).
		Run(func(args mock.Arguments) {
			created = *args.Get(0).(*models.Donation)
		}).
		Return(nil)

	router := setupTestRouter()
	router.Use(actAs("user1", models.RoleDonor))
	router.POST("/donations", controller.CreateDonation)

	body, _ := json.Marshal(validDonationBody())
	req := httptest.NewRequest("POST", "/donations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.DonationPending, created.Status)
	assert.Equal(t, "user1", created.DonorID)
	assert.Nil(t, created.NgoID)
}

func TestGetDonationByID(t *testing.T) {
	controller, mockRepo := setupDonationController()

	donation := &models.Donation{
		ID:         "donation1",
		FoodItem:   "Rice",
		Status:     models.DonationPending,
		ExpiryDate: time.Now().AddDate(0, 1, 0),
		DonorID:    "user1",
	}
	mockRepo.On("FindByID", "donation1").Return(donation, nil)
	mockRepo.On("FindByID", "missing").Return(nil, errors.New("record not found"))

	router := setupTestRouter()
	router.GET("/donations/:id", controller.GetDonationByID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/donations/donation1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/donations/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDonationReportsEffectiveExpiry(t *testing.T) {
	controller, mockRepo := setupDonationController()

	overdue := &models.Donation{
		ID:         "donation1",
		Status:     models.DonationPending,
		ExpiryDate: time.Now().Add(-time.Hour),
	}
	mockRepo.On("FindByID", "donation1").Return(overdue, nil)

	router := setupTestRouter()
	router.GET("/donations/:id", controller.GetDonationByID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/donations/donation1", nil))

	var response struct {
		Data models.Donation `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.DonationExpired, response.Data.Status)
}

func TestListDonationsFilters(t *testing.T) {
	controller, mockRepo := setupDonationController()

	mockRepo.On("Find", repository.DonationFilter{Available: true}).
		Return([]models.Donation{}, nil)

	router := setupTestRouter()
	router.GET("/donations", controller.ListDonations)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/donations?available=true", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdateDonationStatus(t *testing.T) {
	ngo1 := "ngo1"

	tests := []struct {
		name            string
		userID          string
		role            models.UserRole
		requestedStatus models.DonationStatus
		setupMock       func(*mocks.MockDonationRepository)
		expectedStatus  int
	}{
		{
			name:            "ngo accepts pending donation",
			userID:          "ngo1",
			role:            models.RoleNGO,
			requestedStatus: models.DonationAccepted,
			setupMock: func(m *mocks.MockDonationRepository) {
				m.On("FindByID", "donation1").Return(&models.Donation{
					ID: "donation1", Status: models.DonationPending,
					ExpiryDate: time.Now().AddDate(0, 1, 0),
				}, nil)
				m.On("UpdateStatus", "donation1", models.DonationPending, models.DonationAccepted, &ngo1).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "bound ngo collects",
			userID:          "ngo1",
			role:            models.RoleNGO,
			requestedStatus: models.DonationCollected,
			setupMock: func(m *mocks.MockDonationRepository) {
				m.On("FindByID", "donation1").Return(&models.Donation{
					ID: "donation1", Status: models.DonationAccepted, NgoID: &ngo1,
					ExpiryDate: time.Now().AddDate(0, 1, 0),
				}, nil)
				m.On("UpdateStatus", "donation1", models.DonationAccepted, models.DonationCollected, &ngo1).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "other ngo cannot collect",
			userID:          "ngo2",
			role:            models.RoleNGO,
			requestedStatus: models.DonationCollected,
			setupMock: func(m *mocks.MockDonationRepository) {
				m.On("FindByID", "donation1").Return(&models.Donation{
					ID: "donation1", Status: models.DonationAccepted, NgoID: &ngo1,
					ExpiryDate: time.Now().AddDate(0, 1, 0),
				}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:            "accept already accepted donation",
			userID:          "ngo2",
			role:            models.RoleNGO,
			requestedStatus: models.DonationAccepted,
			setupMock: func(m *mocks.MockDonationRepository) {
				m.On("FindByID", "donation1").Return(&models.Donation{
					ID: "donation1", Status: models.DonationAccepted, NgoID: &ngo1,
					ExpiryDate: time.Now().AddDate(0, 1, 0),
				}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:            "lost accept race surfaces as conflict",
			userID:          "ngo2",
			role:            models.RoleNGO,
			requestedStatus: models.DonationAccepted,
			setupMock: func(m *mocks.MockDonationRepository) {
				ngo2 := "ngo2"
				m.On("FindByID", "donation1").Return(&models.Donation{
					ID: "donation1", Status: models.DonationPending,
					ExpiryDate: time.Now().AddDate(0, 1, 0),
				}, nil)
				m.On("UpdateStatus", "donation1", models.DonationPending, models.DonationAccepted, &ngo2).
					Return(repository.ErrStatusConflict)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:            "donation not found",
			userID:          "ngo1",
			role:            models.RoleNGO,
			requestedStatus: models.DonationAccepted,
			setupMock: func(m *mocks.MockDonationRepository) {
				m.On("FindByID", "donation1").Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:            "expired donation rejects transition",
			userID:          "ngo1",
			role:            models.RoleNGO,
			requestedStatus: models.DonationAccepted,
			setupMock: func(m *mocks.MockDonationRepository) {
				m.On("FindByID", "donation1").Return(&models.Donation{
					ID: "donation1", Status: models.DonationPending,
					ExpiryDate: time.Now().Add(-time.Hour),
				}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupDonationController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(actAs(tt.userID, tt.role))
			router.PATCH("/donations/:id/status", controller.UpdateDonationStatus)

			body, _ := json.Marshal(map[string]interface{}{"status": tt.requestedStatus})
			req := httptest.NewRequest("PATCH", "/donations/donation1/status", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

// Donor submits rice, ngo1 accepts, ngo1 collects, and the counters reflect
// the collected donation.
func TestDonationLifecycleEndToEnd(t *testing.T) {
	controller, mockRepo := setupDonationController()
	ngo1 := "ngo1"

	store := models.Donation{}
	mockRepo.On("Create", mock.AnythingOfType("*models.Donation")).
		Run(func(args mock.Arguments) {
			d := args.Get(0).(*models.Donation)
			d.ID = "rice1"
			store = *d
		}).
		Return(nil)
	mockRepo.On("FindByID", "rice1").Return(&store, nil)
	mockRepo.On("UpdateStatus", "rice1", models.DonationPending, models.DonationAccepted, &ngo1).
		Run(func(args mock.Arguments) {
			store.Status = models.DonationAccepted
			store.NgoID = &ngo1
		}).
		Return(nil)
	mockRepo.On("UpdateStatus", "rice1", models.DonationAccepted, models.DonationCollected, &ngo1).
		Run(func(args mock.Arguments) {
			store.Status = models.DonationCollected
		}).
		Return(nil)

	donorRouter := setupTestRouter()
	donorRouter.Use(actAs("user1", models.RoleDonor))
	donorRouter.POST("/donations", controller.CreateDonation)

	ngoRouter := setupTestRouter()
	ngoRouter.Use(actAs("ngo1", models.RoleNGO))
	ngoRouter.PATCH("/donations/:id/status", controller.UpdateDonationStatus)

	// donor creates the donation
	body, _ := json.Marshal(validDonationBody())
	req := httptest.NewRequest("POST", "/donations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	donorRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.DonationPending, store.Status)

	// ngo1 accepts, then collects
	for _, status := range []models.DonationStatus{models.DonationAccepted, models.DonationCollected} {
		body, _ = json.Marshal(map[string]interface{}{"status": status})
		req = httptest.NewRequest("PATCH", "/donations/rice1/status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		ngoRouter.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("requested %s", status))
	}
	assert.Equal(t, models.DonationCollected, store.Status)
	assert.Equal(t, "ngo1", *store.NgoID)

	// counters reflect the collected donation
	mockRepo.On("Find", repository.DonationFilter{}).Return([]models.Donation{store}, nil)

	statsRouter := setupTestRouter()
	statsRouter.GET("/donations/stats", controller.GetDonationStats)
	w = httptest.NewRecorder()
	statsRouter.ServeHTTP(w, httptest.NewRequest("GET", "/donations/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Total     int `json:"total"`
			Collected int `json:"collected"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Data.Total)
	assert.Equal(t, 1, response.Data.Collected)

	mockRepo.AssertExpectations(t)
}
