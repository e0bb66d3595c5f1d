package main

import (
	"context"                               // context package is needed for Redis operations
	"log"                                   // log package is needed for logging
	"portfolio_backend/internal/api"        // Custom package for API handlers
	"portfolio_backend/internal/config"     // Custom package for configuration
	"portfolio_backend/internal/db"         // Custom package for the database
	"portfolio_backend/internal/email"      // Custom package for the contact mailer
	"portfolio_backend/internal/middleware" // Custom package for middleware
	"portfolio_backend/internal/storage"    // Custom package for the upload file store

	"github.com/gin-contrib/cors"  // CORS middleware for Gin
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// The token service cannot run without a signing secret
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}

	// Connect to the database
	gdb := db.Open(cfg.DSN())

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// CORS restricted to the frontend origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Request body size limit (10MB)
	r.Use(middleware.BodySizeLimitMiddleware(10 * 1024 * 1024))

	// Upload file store and contact mailer
	fileStore := storage.NewFileStore(cfg.UploadDir)
	mailer := email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.ContactEmail)

	// Serve uploaded images as static content
	r.Static("/uploads", cfg.UploadDir)

	// General per-IP API rate limit (100 requests per 15 minutes)
	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.RateLimitMiddleware(100.0/(15*60), 100, "Příliš mnoho požadavků. Zkuste to prosím později."))

	// Health check route
	apiGroup.GET("/health", api.HealthHandler())

	// Auth routes, rate limited harder against brute force (5 attempts per 15 minutes)
	apiGroup.POST("/auth/login",
		middleware.RateLimitMiddleware(5.0/(15*60), 5, "Příliš mnoho pokusů o přihlášení. Zkuste to prosím později."),
		api.LoginHandler(gdb, cfg.JWTSecret))

	// Public portfolio reads
	portfolioGroup := apiGroup.Group("/portfolio")
	portfolioGroup.GET("/categories", api.ListCategoriesHandler(gdb, redisClient))
	portfolioGroup.GET("/images/:categoryId", api.ListCategoryImagesHandler(gdb, redisClient))

	// Admin routes (protected by JWT)
	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	adminGroup.GET("/verify", api.VerifyTokenHandler())
	adminGroup.GET("/images", api.ListAllImagesHandler(gdb))
	adminGroup.POST("/images", api.UploadImageHandler(gdb, redisClient, fileStore, cfg.MaxFileSize))
	adminGroup.DELETE("/images/:imageId", api.DeleteImageHandler(gdb, redisClient, fileStore))

	// Contact form
	apiGroup.POST("/contact", api.ContactHandler(mailer))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err) // Fatal error if the server fails
	}
}
