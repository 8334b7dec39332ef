package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"asset-management-api/internal/db"
	"asset-management-api/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	var (
		migrationsDir = flag.String("migrations", "db/migrations", "Migrations directory")
		seedsDir      = flag.String("seeds", "db/seeds", "Seeds directory")
		skipSeeds     = flag.Bool("skip-seeds", false, "Apply migrations only")
	)
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	conn, err := store.Open(dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Migrate(ctx, conn, *migrationsDir); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations applied")

	if !*skipSeeds {
		if err := db.Seed(ctx, conn, *seedsDir); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Println("Seeds applied")
	}
}
