package database

import (
	"log"

	"unityeats/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.NGOProfile{},
		&models.Donation{},
		&models.Verification{},
		&models.ResetPassword{},
		&models.Testimonial{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
