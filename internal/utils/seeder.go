package utils

import (
	"log"
	"time"

	"unityeats/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the demo data set: two donors, four verified NGOs, a handful of
// donations in various states, and the landing-page testimonials. Existing
// rows (by email) are left alone so the seeder can run repeatedly.
func Seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hash)

	donors := []models.User{
		{
			Name: "John Doe", Email: "john@example.com", Password: password,
			Role: models.RoleDonor, Phone: "123-456-7890", Address: "123 Main St, Anytown",
		},
		{
			Name: "Jane Smith", Email: "jane@example.com", Password: password,
			Role: models.RoleDonor, Phone: "123-456-7891", Address: "456 Oak St, Anytown",
		},
	}

	type seedNGO struct {
		user     models.User
		areas    models.ServiceAreas
		verified models.VerificationStatus
	}

	ngos := []seedNGO{
		{
			user: models.User{
				Name: "Food For All", Email: "info@foodforall.org", Password: password,
				Role: models.RoleNGO, Phone: "123-456-7892", Address: "789 Charity Ave, Helptown",
				Website: "https://www.foodforall.org",
				Bio:     "Dedicated to reducing food waste and ensuring everyone has access to nutritious meals.",
			},
			areas:    models.ServiceAreas{"Downtown", "Eastside", "North County"},
			verified: models.VerificationVerified,
		},
		{
			user: models.User{
				Name: "Hunger Heroes", Email: "contact@hungerheroes.org", Password: password,
				Role: models.RoleNGO, Phone: "123-456-7893", Address: "101 Hope St, Goodcity",
				Website: "https://www.hungerheroes.org",
				Bio:     "Collecting and distributing food donations to homeless shelters and community centers.",
			},
			areas:    models.ServiceAreas{"Westside", "South County", "Central District"},
			verified: models.VerificationVerified,
		},
		{
			user: models.User{
				Name: "Fresh Start Initiative", Email: "help@freshstart.org", Password: password,
				Role: models.RoleNGO, Phone: "123-456-7894", Address: "202 Blessing Rd, Kindville",
				Website: "https://www.freshstart.org",
				Bio:     "Rescuing surplus produce from local farmers and delivering it to food banks.",
			},
			areas:    models.ServiceAreas{"Rural Areas", "Urban Centers", "University District"},
			verified: models.VerificationVerified,
		},
		{
			user: models.User{
				Name: "Community Food Bank", Email: "info@communityfoodbank.org", Password: password,
				Role: models.RoleNGO, Phone: "123-456-7895", Address: "303 Giving Ave, Helperville",
				Website: "https://www.communityfoodbank.org",
				Bio:     "Collecting, storing, and distributing food to vulnerable populations for over 25 years.",
			},
			areas:    models.ServiceAreas{"All City Districts", "Suburban Areas"},
			verified: models.VerificationVerified,
		},
	}

	for i := range donors {
		if err := seedUser(db, &donors[i]); err != nil {
			return err
		}
	}

	ngoIDs := make([]string, 0, len(ngos))
	for i := range ngos {
		if err := seedUser(db, &ngos[i].user); err != nil {
			return err
		}
		ngoIDs = append(ngoIDs, ngos[i].user.ID)

		var count int64
		if err := db.Model(&models.NGOProfile{}).Where("user_id = ?", ngos[i].user.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			profile := models.NGOProfile{
				UserID:             ngos[i].user.ID,
				VerificationStatus: ngos[i].verified,
				ServiceAreas:       ngos[i].areas,
			}
			if err := db.Create(&profile).Error; err != nil {
				return err
			}
		}
	}

	var donationCount int64
	if err := db.Model(&models.Donation{}).Count(&donationCount).Error; err != nil {
		return err
	}
	if donationCount == 0 {
		future := time.Now().AddDate(0, 1, 0)
		accepted := ngoIDs[0]
		donations := []models.Donation{
			{
				FoodItem: "Fresh Vegetables", Quantity: 10, Unit: "kg", ExpiryDate: future,
				Address: "123 Main St, Anytown", Status: models.DonationPending, DonorID: donors[0].ID,
			},
			{
				FoodItem: "Canned Goods", Quantity: 24, Unit: "cans", ExpiryDate: future.AddDate(1, 0, 0),
				Address: "456 Oak St, Anytown", Status: models.DonationAccepted,
				DonorID: donors[1].ID, NgoID: &accepted,
			},
			{
				FoodItem: "Bread and Pastries", Quantity: 15, Unit: "items", ExpiryDate: time.Now().AddDate(0, 0, 2),
				Address: "123 Main St, Anytown", Status: models.DonationPending, DonorID: donors[0].ID,
			},
		}
		for i := range donations {
			if err := db.Create(&donations[i]).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeded %d donations", len(donations))
	}

	var testimonialCount int64
	if err := db.Model(&models.Testimonial{}).Count(&testimonialCount).Error; err != nil {
		return err
	}
	if testimonialCount == 0 {
		testimonials := []models.Testimonial{
			{
				Name: "Maria Garcia", Role: "Restaurant Owner",
				Content: "UnityEats made it effortless to donate our surplus food instead of throwing it away.",
			},
			{
				Name: "David Chen", Role: "NGO Coordinator",
				Content: "We reach twice as many families now that donations come to us instead of us chasing them.",
			},
		}
		for i := range testimonials {
			if err := db.Create(&testimonials[i]).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Seed data loaded")
	return nil
}

func seedUser(db *gorm.DB, user *models.User) error {
	var existing models.User
	err := db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		*user = existing
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(user).Error
}
