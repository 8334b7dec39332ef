package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"asset-management-api/internal"
	"asset-management-api/internal/config"
	"asset-management-api/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env when present; real environments set vars directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	srv := internal.NewServer(cfg)

	// Apply migrations and seeds before serving traffic
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := db.Migrate(ctx, srv.DB, "db/migrations"); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := db.Seed(ctx, srv.DB, "db/seeds"); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Starting Asset Management API server...")
	log.Printf("JWT Issuer: %s", cfg.JWTIssuer)
	log.Printf("JWT Audience: %s", cfg.JWTAudience)
	log.Printf("JWT Expiry: %v", cfg.JWTExpiry)
	log.Printf("Listening on %s", cfg.Addr)

	log.Fatal(http.ListenAndServe(cfg.Addr, srv.Router))
}
