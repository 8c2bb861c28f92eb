package main

import (
	"context"
	"flag"
	"log"
	"time"

	"cashbook-backend/internal/app"
	"cashbook-backend/internal/config"
	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/repository/postgres"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	envFile := flag.String("env-file", ".env", "Optional dotenv file loaded before environment overrides")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	if cfg.Storage.Type != config.StorageTypePostgres {
		log.Fatalf("Migrations only apply to postgres storage, configured: %s", cfg.Storage.Type)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := app.OpenDatabase(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	logger.Info("Applying migrations...")
	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("Migration failed", "error", err)
		log.Fatalf("Migration failed: %v", err)
	}
	logger.Info("Migrations applied successfully")
}
