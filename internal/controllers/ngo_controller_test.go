package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"unityeats/internal/controllers"
	"unityeats/internal/mocks"
	"unityeats/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupNGOController() (*controllers.NGOController, *mocks.MockNGORepository) {
	mockRepo := new(mocks.MockNGORepository)
	controller := controllers.NewNGOController(mockRepo, nil)
	return controller, mockRepo
}

func directoryFixture() []models.NGO {
	return []models.NGO{
		{
			ID: "ngo1", Name: "Food For All", Address: "789 Charity Ave, Helptown",
			ServiceAreas:       models.ServiceAreas{"Downtown", "Eastside"},
			VerificationStatus: models.VerificationVerified,
		},
		{
			ID: "ngo2", Name: "Hunger Heroes", Address: "101 Hope St, Goodcity",
			ServiceAreas:       models.ServiceAreas{"Westside"},
			VerificationStatus: models.VerificationVerified,
		},
	}
}

func decodeNGOList(t *testing.T, body []byte) []models.NGO {
	t.Helper()
	var response struct {
		Data []models.NGO `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(body, &response))
	return response.Data
}

func TestListNGOs(t *testing.T) {
	controller, mockRepo := setupNGOController()
	mockRepo.On("FindVerified").Return(directoryFixture(), nil)

	router := setupTestRouter()
	router.GET("/ngos", controller.ListNGOs)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ngos", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeNGOList(t, w.Body.Bytes()), 2)
}

func TestSearchNGOsEmptyQueryEqualsList(t *testing.T) {
	controller, mockRepo := setupNGOController()
	mockRepo.On("FindVerified").Return(directoryFixture(), nil)

	router := setupTestRouter()
	router.GET("/ngos/search", controller.SearchNGOs)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ngos/search", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	listed := decodeNGOList(t, w.Body.Bytes())
	assert.Len(t, listed, 2)
}

func TestSearchNGOsCaseInsensitive(t *testing.T) {
	for _, query := range []string{"hope", "HOPE"} {
		controller, mockRepo := setupNGOController()
		mockRepo.On("FindVerified").Return(directoryFixture(), nil)

		router := setupTestRouter()
		router.GET("/ngos/search", controller.SearchNGOs)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/ngos/search?q="+query, nil))

		assert.Equal(t, http.StatusOK, w.Code)

		matched := decodeNGOList(t, w.Body.Bytes())
		assert.Len(t, matched, 1, "query %q", query)
		assert.Equal(t, "ngo2", matched[0].ID)
	}
}

func TestGetNGOByID(t *testing.T) {
	controller, mockRepo := setupNGOController()

	ngo := directoryFixture()[0]
	mockRepo.On("FindByUserID", "ngo1").Return(&ngo, nil)
	mockRepo.On("FindByUserID", "missing").Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.GET("/ngos/:id", controller.GetNGOByID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ngos/ngo1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ngos/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateVerification(t *testing.T) {
	tests := []struct {
		name           string
		role           models.UserRole
		body           map[string]interface{}
		setupMock      func(*mocks.MockNGORepository)
		expectedStatus int
	}{
		{
			name: "admin verifies an ngo",
			role: models.RoleAdmin,
			body: map[string]interface{}{"verification_status": "verified"},
			setupMock: func(m *mocks.MockNGORepository) {
				m.On("SetVerificationStatus", "ngo1", models.VerificationVerified).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-admin is rejected",
			role:           models.RoleNGO,
			body:           map[string]interface{}{"verification_status": "verified"},
			setupMock:      func(m *mocks.MockNGORepository) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "unknown status is rejected",
			role:           models.RoleAdmin,
			body:           map[string]interface{}{"verification_status": "approved"},
			setupMock:      func(m *mocks.MockNGORepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing profile",
			role: models.RoleAdmin,
			body: map[string]interface{}{"verification_status": "rejected"},
			setupMock: func(m *mocks.MockNGORepository) {
				m.On("SetVerificationStatus", "ngo1", models.VerificationRejected).
					Return(gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupNGOController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(actAs("admin1", tt.role))
			router.PATCH("/ngos/:id/verification", controller.UpdateVerification)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("PATCH", "/ngos/ngo1/verification", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}
