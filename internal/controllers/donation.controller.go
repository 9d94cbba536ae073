package controllers

import (
	"errors"
	"net/http"
	"time"

	"unityeats/internal/cache"
	"unityeats/internal/lifecycle"
	"unityeats/internal/models"
	"unityeats/internal/notify"
	"unityeats/internal/repository"
	"unityeats/internal/stats"

	"github.com/gin-gonic/gin"
)

type DonationController struct {
	repo      repository.DonationRepository
	publisher *notify.Publisher
	cache     *cache.RedisClient
}

func NewDonationController(repo repository.DonationRepository, publisher *notify.Publisher, redisClient *cache.RedisClient) *DonationController {
	return &DonationController{repo: repo, publisher: publisher, cache: redisClient}
}

type CreateDonationRequest struct {
	FoodItem   string    `json:"food_item" binding:"required"`
	Quantity   float64   `json:"quantity" binding:"required,gt=0"`
	Unit       string    `json:"unit" binding:"required"`
	ExpiryDate time.Time `json:"expiry_date" binding:"required"`
	Address    string    `json:"address" binding:"required"`
	Notes      string    `json:"notes"`
}

type UpdateStatusRequest struct {
	Status models.DonationStatus `json:"status" binding:"required,oneof=pending accepted collected expired"`
}

// CreateDonation godoc
// @Summary Create a new donation
// @Description Create a donation offer; the acting donor is bound as the owner and the status starts at pending
// @Tags donation
// @Accept json
// @Produce json
// @Param donation body CreateDonationRequest true "Donation data"
// @Success 201 {object} map[string]interface{} "Donation created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Only donors can create donations"
// @Router /donations [post]
func (dc *DonationController) CreateDonation(c *gin.Context) {
	if c.GetString("role") != string(models.RoleDonor) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Only donors can create donations",
			"error":   "Acting user does not have the donor role",
		})
		return
	}

	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	donation := models.Donation{
		FoodItem:   req.FoodItem,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		ExpiryDate: req.ExpiryDate,
		Address:    req.Address,
		Notes:      req.Notes,
		Status:     models.DonationPending,
		DonorID:    c.GetString("user_id"),
	}

	if err := dc.repo.Create(&donation); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create donation",
			"error":   err.Error(),
		})
		return
	}

	dc.publisher.DonationEvent(notify.EventDonationCreated, donation)
	dc.cache.InvalidateStats()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Donation created successfully",
		"data":    donation,
	})
}

// GetDonationByID godoc
// @Summary Get a donation by ID
// @Tags donation
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} map[string]interface{} "Donation retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Donation not found"
// @Router /donations/{id} [get]
func (dc *DonationController) GetDonationByID(c *gin.Context) {
	donation, err := dc.repo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Donation not found",
			"error":   "No donation exists with the provided ID",
		})
		return
	}

	donation.Status = donation.EffectiveStatus(time.Now())
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Donation retrieved successfully",
		"data":    donation,
	})
}

// ListDonations godoc
// @Summary List donations
// @Description List donations newest first, optionally filtered by exact match on status, donor_id or ngo_id. available=true selects pending donations with no NGO bound.
// @Tags donation
// @Produce json
// @Param status query string false "Donation status"
// @Param donor_id query string false "Donor ID"
// @Param ngo_id query string false "NGO ID"
// @Param available query bool false "Only unassigned pending donations"
// @Success 200 {object} map[string]interface{} "Donations retrieved successfully"
// @Router /donations [get]
func (dc *DonationController) ListDonations(c *gin.Context) {
	filter := repository.DonationFilter{
		Status:    models.DonationStatus(c.Query("status")),
		DonorID:   c.Query("donor_id"),
		NgoID:     c.Query("ngo_id"),
		Available: c.Query("available") == "true",
	}

	donations, err := dc.repo.Find(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve donations",
			"error":   err.Error(),
		})
		return
	}

	now := time.Now()
	for i := range donations {
		donations[i].Status = donations[i].EffectiveStatus(now)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Donations retrieved successfully",
		"data":    donations,
	})
}

// UpdateDonationStatus godoc
// @Summary Update a donation's status
// @Description Move a donation through its lifecycle. Accepting binds the acting NGO; collecting is restricted to the NGO that accepted.
// @Tags donation
// @Accept json
// @Produce json
// @Param id path string true "Donation ID"
// @Param status body UpdateStatusRequest true "Requested status"
// @Success 200 {object} map[string]interface{} "Donation status updated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Actor is not permitted to make this transition"
// @Failure 404 {object} map[string]interface{} "Donation not found"
// @Failure 409 {object} map[string]interface{} "Transition is not allowed from the current status"
// @Router /donations/{id}/status [patch]
func (dc *DonationController) UpdateDonationStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	donation, err := dc.repo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Donation not found",
			"error":   "No donation exists with the provided ID",
		})
		return
	}

	// A donation past its expiry date behaves as expired even before the
	// sweep worker has written it.
	current := *donation
	current.Status = current.EffectiveStatus(time.Now())

	next, err := lifecycle.Transition(current, req.Status, c.GetString("user_id"), models.UserRole(c.GetString("role")))
	if err != nil {
		var forbidden *lifecycle.ForbiddenError
		if errors.As(err, &forbidden) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "You are not allowed to make this change",
				"error":   forbidden.Reason,
			})
			return
		}
		var invalid *lifecycle.InvalidTransitionError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "This status change is not allowed",
				"error":   invalid.Reason,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update donation status",
			"error":   err.Error(),
		})
		return
	}

	err = dc.repo.UpdateStatus(donation.ID, current.Status, next.Status, next.NgoID)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "This status change is not allowed",
				"error":   "this donation was already accepted by another organization",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update donation status",
			"error":   err.Error(),
		})
		return
	}

	switch next.Status {
	case models.DonationAccepted:
		dc.publisher.DonationEvent(notify.EventDonationAccepted, next)
	case models.DonationCollected:
		dc.publisher.DonationEvent(notify.EventDonationCollected, next)
	}
	dc.cache.InvalidateStats()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Donation status updated",
		"data":    next,
	})
}

// GetDonationStats godoc
// @Summary Get donation counters
// @Description Counts of donations by status across the whole set
// @Tags donation
// @Produce json
// @Success 200 {object} map[string]interface{} "Stats retrieved successfully"
// @Router /donations/stats [get]
func (dc *DonationController) GetDonationStats(c *gin.Context) {
	if summary, ok, err := dc.cache.GetStats(); err == nil && ok {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Stats retrieved successfully",
			"data":    summary,
		})
		return
	}

	donations, err := dc.repo.Find(repository.DonationFilter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve stats",
			"error":   err.Error(),
		})
		return
	}

	summary := stats.Aggregate(donations, time.Now())
	dc.cache.StoreStats(summary)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stats retrieved successfully",
		"data":    summary,
	})
}
