package main

import (
	"context"

	"listing_system/internal/config" // Custom import path (Config)
	"listing_system/internal/store"  // Custom import path (Store)

	"github.com/sirupsen/logrus"
)

// Main entry point for index migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	client := store.Connect(cfg.MongoURI)
	ctx := context.Background()

	// Unique identity index on users, filter index on listings
	if err := store.NewUserStore(client, cfg.MongoDB).EnsureIndexes(ctx); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := store.NewListingStore(client, cfg.MongoDB).EnsureIndexes(ctx); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
