package main

import (
	"context"
	"log"

	"github.com/pytechdigital/content-api/internal/config"
	"github.com/pytechdigital/content-api/internal/database"
	"github.com/pytechdigital/content-api/internal/seed"
)

// Standalone seeding utility: connects, seeds any empty reference collection
// and exits. Useful for provisioning a fresh database without starting the
// API server.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGODB_URI is required")
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := seed.NewSeeder(client.Database(cfg.MongoDB.Database)).Run(ctx); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("seeding complete")
}
