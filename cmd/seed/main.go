package main

// Seed demo data (one supervisor, four fellows and groups, ten sessions):
//   go run ./cmd/seed

import (
	"context"
	"log"
	"os"

	"supervisor-backend/internal/seed"
	"supervisor-backend/internal/sessions"
	"supervisor-backend/internal/shared/config"
	"supervisor-backend/internal/shared/storage/db"
	"supervisor-backend/internal/supervisors"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	supervisorRepo := &supervisors.PGRepo{DB: sqlDB}
	sessionRepo := &sessions.PGRepo{DB: sqlDB}
	if err := seed.Apply(ctx, supervisorRepo, sessionRepo); err != nil {
		log.Printf("failed to seed: %v", err)
		os.Exit(1)
	}
	log.Printf("seeded demo data")
}
