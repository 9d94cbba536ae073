package controllers

import (
	"net/http"
	"time"

	"unityeats/internal/models"
	"unityeats/internal/repository"
	"unityeats/internal/stats"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	donationRepo repository.DonationRepository
}

func NewDashboardController(donationRepo repository.DonationRepository) *DashboardController {
	return &DashboardController{donationRepo: donationRepo}
}

// The dashboard payload is a tagged union over the actor's role, resolved
// once here rather than by string checks downstream.

type DonorView struct {
	View      string            `json:"view"`
	Donations []models.Donation `json:"donations"`
	Stats     stats.Summary     `json:"stats"`
}

type NgoView struct {
	View           string            `json:"view"`
	Donations      []models.Donation `json:"donations"`
	AvailableCount int               `json:"available_count"`
	Stats          stats.Summary     `json:"stats"`
}

type AdminView struct {
	View  string        `json:"view"`
	Stats stats.Summary `json:"stats"`
}

// GetDashboard godoc
// @Summary Get the role-specific dashboard
// @Description Donors see their own donations; NGOs see the donations they accepted plus the available count; admins see the global counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID := c.GetString("user_id")
	now := time.Now()

	var view interface{}
	switch models.UserRole(c.GetString("role")) {
	case models.RoleDonor:
		donations, err := dc.donationRepo.Find(repository.DonationFilter{DonorID: userID})
		if err != nil {
			dc.fail(c, err)
			return
		}
		for i := range donations {
			donations[i].Status = donations[i].EffectiveStatus(now)
		}
		view = DonorView{View: "donor", Donations: donations, Stats: stats.Aggregate(donations, now)}

	case models.RoleNGO:
		donations, err := dc.donationRepo.Find(repository.DonationFilter{NgoID: userID})
		if err != nil {
			dc.fail(c, err)
			return
		}
		available, err := dc.donationRepo.Find(repository.DonationFilter{Available: true})
		if err != nil {
			dc.fail(c, err)
			return
		}
		for i := range donations {
			donations[i].Status = donations[i].EffectiveStatus(now)
		}
		view = NgoView{
			View:           "ngo",
			Donations:      donations,
			AvailableCount: len(available),
			Stats:          stats.Aggregate(donations, now),
		}

	default:
		donations, err := dc.donationRepo.Find(repository.DonationFilter{})
		if err != nil {
			dc.fail(c, err)
			return
		}
		view = AdminView{View: "admin", Stats: stats.Aggregate(donations, now)}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data":    view,
	})
}

func (dc *DashboardController) fail(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to retrieve dashboard",
		"error":   err.Error(),
	})
}
