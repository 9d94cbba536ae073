package controllers

import (
	"net/http"

	"unityeats/internal/cache"
	"unityeats/internal/directory"
	"unityeats/internal/models"
	"unityeats/internal/repository"

	"github.com/gin-gonic/gin"
)

type NGOController struct {
	repo  repository.NGORepository
	cache *cache.RedisClient
}

func NewNGOController(repo repository.NGORepository, redisClient *cache.RedisClient) *NGOController {
	return &NGOController{repo: repo, cache: redisClient}
}

type UpdateVerificationRequest struct {
	VerificationStatus models.VerificationStatus `json:"verification_status" binding:"required,oneof=pending verified rejected"`
}

func (nc *NGOController) loadDirectory() ([]models.NGO, error) {
	if ngos, ok, err := nc.cache.GetDirectory(); err == nil && ok {
		return ngos, nil
	}

	ngos, err := nc.repo.FindVerified()
	if err != nil {
		return nil, err
	}
	nc.cache.StoreDirectory(ngos)
	return ngos, nil
}

// ListNGOs godoc
// @Summary List verified NGOs
// @Tags ngo
// @Produce json
// @Success 200 {object} map[string]interface{} "NGOs retrieved successfully"
// @Router /ngos [get]
func (nc *NGOController) ListNGOs(c *gin.Context) {
	ngos, err := nc.loadDirectory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve NGOs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "NGOs retrieved successfully",
		"data":    ngos,
	})
}

// SearchNGOs godoc
// @Summary Search verified NGOs
// @Description Case-insensitive substring match over name, address and service areas. An empty query returns the full verified directory.
// @Tags ngo
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} map[string]interface{} "NGOs retrieved successfully"
// @Router /ngos/search [get]
func (nc *NGOController) SearchNGOs(c *gin.Context) {
	ngos, err := nc.loadDirectory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to search NGOs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "NGOs retrieved successfully",
		"data":    directory.Filter(ngos, c.Query("q")),
	})
}

// GetNGOByID godoc
// @Summary Get an NGO by ID
// @Tags ngo
// @Produce json
// @Param id path string true "NGO user ID"
// @Success 200 {object} map[string]interface{} "NGO retrieved successfully"
// @Failure 404 {object} map[string]interface{} "NGO not found"
// @Router /ngos/{id} [get]
func (nc *NGOController) GetNGOByID(c *gin.Context) {
	ngo, err := nc.repo.FindByUserID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "NGO not found",
			"error":   "No NGO exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "NGO retrieved successfully",
		"data":    ngo,
	})
}

// UpdateVerification godoc
// @Summary Update an NGO's verification status
// @Description Admin gate controlling whether an NGO is discoverable and eligible to act
// @Tags ngo
// @Accept json
// @Produce json
// @Param id path string true "NGO user ID"
// @Param verification body UpdateVerificationRequest true "New verification status"
// @Success 200 {object} map[string]interface{} "Verification status updated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Admin role required"
// @Failure 404 {object} map[string]interface{} "NGO not found"
// @Router /ngos/{id}/verification [patch]
func (nc *NGOController) UpdateVerification(c *gin.Context) {
	if c.GetString("role") != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Admin role required",
			"error":   "Only an administrator can change verification status",
		})
		return
	}

	var req UpdateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := nc.repo.SetVerificationStatus(c.Param("id"), req.VerificationStatus); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "NGO not found",
			"error":   "No NGO profile exists for the provided ID",
		})
		return
	}

	nc.cache.InvalidateDirectory()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Verification status updated",
		"data":    nil,
	})
}
