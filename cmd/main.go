package main

import (
	"log"
	"net/http"
	"time"

	"unityeats/database"
	"unityeats/docs"
	"unityeats/internal/cache"
	"unityeats/internal/config"
	"unityeats/internal/controllers"
	"unityeats/internal/notify"
	"unityeats/internal/repository"
	"unityeats/internal/services"
	"unityeats/internal/utils"
	"unityeats/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	docs.SwaggerInfo.Title = "UnityEats API"
	docs.SwaggerInfo.Description = "Donation-matching API connecting food donors with NGOs."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase(cfg)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	userRepo := repository.NewUserRepository(database.DB)
	ngoRepo := repository.NewNGORepository(database.DB)
	donationRepo := repository.NewDonationRepository(database.DB)
	verificationRepo := repository.NewVerificationRepository(database.DB)
	resetRepo := repository.NewResetPasswordRepository(database.DB)
	testimonialRepo := repository.NewTestimonialRepository(database.DB)

	// Redis and RabbitMQ are optional collaborators: the API degrades to
	// uncached reads and no change feed when they are absent.
	var redisClient *cache.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: redis unavailable, running without cache: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("Connected to redis")
		}
	}

	var publisher *notify.Publisher
	if cfg.RabbitMQURL != "" {
		publisher, err = notify.NewPublisher(cfg.RabbitMQURL, "unityeats.events")
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, running without change feed: %v", err)
			publisher = nil
		} else {
			defer publisher.Close()
			log.Println("Connected to RabbitMQ")
		}
	}

	expiryWorker := services.NewExpiryWorker(donationRepo, publisher, cfg.ExpirySweepInterval)
	expiryWorker.Start()
	defer expiryWorker.Stop()
	log.Printf("Expiry sweep running every %v", cfg.ExpirySweepInterval)

	mailConfig := utils.LoadMailConfig(cfg)

	userController := controllers.NewUserController(userRepo, ngoRepo, resetRepo, mailConfig)
	verificationController := controllers.NewVerificationController(verificationRepo, userRepo, mailConfig)
	oauthController := controllers.NewOauthController(userRepo)
	ngoController := controllers.NewNGOController(ngoRepo, redisClient)
	donationController := controllers.NewDonationController(donationRepo, publisher, redisClient)
	dashboardController := controllers.NewDashboardController(donationRepo)
	testimonialController := controllers.NewTestimonialController(testimonialRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "UnityEats API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterVerificationRoutes(router, verificationController)
	routes.RegisterOauthRoutes(router, oauthController)
	routes.RegisterNGORoutes(router, ngoController)
	routes.RegisterDonationRoutes(router, donationController)
	routes.RegisterDashboardRoutes(router, dashboardController)
	routes.RegisterTestimonialRoutes(router, testimonialController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("UnityEats API server starting on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
