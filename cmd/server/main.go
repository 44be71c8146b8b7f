package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"listing_system/internal/api"        // Custom package for API handlers
	"listing_system/internal/config"     // Custom package for configuration
	"listing_system/internal/middleware" // Custom package for middleware
	"listing_system/internal/store"      // Custom package for persistence
	"listing_system/internal/utils"      // Custom package for tokens and sessions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to MongoDB
	client := store.Connect(cfg.MongoURI)
	users := store.NewUserStore(client, cfg.MongoDB)
	listings := store.NewListingStore(client, cfg.MongoDB)

	// Setup Redis client for session markers
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	sessions := utils.NewSessions(redisClient, cfg.SessionSecret)

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

	r.LoadHTMLGlob("web/templates/*.html") // HTML views

	// Public pages
	r.GET("/register", api.ShowRegisterHandler())
	r.POST("/register", api.RegisterHandler(users))
	r.GET("/login", api.ShowLoginHandler())
	r.POST("/login", api.LoginHandler(users, sessions, cfg.JWTSecret, cfg.IsProd))
	r.POST("/logout", api.LogoutHandler(sessions))
	r.GET("/search", api.ShowSearchHandler())
	r.POST("/search", api.SearchHandler(listings))

	// Authenticated pages (protected by JWT)
	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authed.GET("/dashboard", api.DashboardHandler())

	// Admin pages (protected, admin only)
	admin := r.Group("/")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware())
	admin.GET("/insert", api.InsertFormHandler())
	admin.POST("/insert", api.InsertHandler(listings))
	admin.GET("/adminadd", api.InsertFormHandler())

	// Public JSON API. The mutation routes here are intentionally not behind
	// the auth middleware; the admin HTML routes above are the gated surface.
	apiGroup := r.Group("/api")
	apiGroup.GET("/AirBnBs", api.APIListHandler(listings))
	apiGroup.GET("/AirBnBs/:id", api.APIGetHandler(listings))
	apiGroup.GET("/AirBnBs/review/:id", api.APIReviewHandler(listings))
	apiGroup.POST("/AirBnBs", api.APICreateHandler(listings))
	apiGroup.PUT("/AirBnBs/:id", api.APIUpdateHandler(listings))
	apiGroup.DELETE("/AirBnBs/:id", api.APIDeleteHandler(listings))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
