package main

import (
	"log"

	"unityeats/database"
	"unityeats/internal/config"
	"unityeats/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	database.ConnectDatabase(cfg)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := utils.Seed(database.DB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}
