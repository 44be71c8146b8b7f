package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	MongoURI      string // MongoDB connection string
	MongoDB       string // MongoDB database name
	JWTSecret     string // JWT signing secret
	SessionSecret string // Session cookie signing secret
	RedisAddr     string // Redis server address
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables.
// A missing Mongo connection string or JWT secret is fatal.
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cfg := &Config{
		AppPort:       os.Getenv("APP_PORT"),          // Application port
		MongoURI:      os.Getenv("MONGODB_URI"),       // MongoDB connection string
		MongoDB:       os.Getenv("MONGO_DB"),          // MongoDB database name
		JWTSecret:     os.Getenv("JWT_SECRET"),        // JWT signing secret
		SessionSecret: os.Getenv("SESSION_SECRET"),    // Session cookie signing secret
		RedisAddr:     os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:       redisDB,                        // Redis database number
		IsProd:        os.Getenv("IS_PROD") == "true", // Is production environment
	}
	if cfg.MongoURI == "" {
		logrus.Fatal("MONGODB_URI is not defined")
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not defined")
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "airbnb"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}
	return cfg
}
