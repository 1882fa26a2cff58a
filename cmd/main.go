package main

import (
	"context"
	"os"
	"time"

	"shopbot/config"
	"shopbot/pkg/logger"
	"shopbot/service"
	"shopbot/storage/postgres"
)

// Initializes the shared pool, applies migrations and reports what the
// database holds. The bot process embeds the same storage and services.
func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pgStore, err := postgres.New(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pgStore.Close()

	svc := service.New(pgStore, log)

	totalUsers, err := pgStore.User().GetTotalUsers(ctx)
	if err != nil {
		log.Error("Failed to count users", logger.Error(err))
		os.Exit(1)
	}
	totalProducts, err := pgStore.Product().GetTotalProducts(ctx)
	if err != nil {
		log.Error("Failed to count products", logger.Error(err))
		os.Exit(1)
	}
	catalog, err := svc.Shop().Catalog(ctx)
	if err != nil {
		log.Error("Failed to load catalog", logger.Error(err))
		os.Exit(1)
	}

	log.Info("Storage is ready",
		logger.Int("users", totalUsers),
		logger.Int("products", totalProducts),
		logger.Int("available_products", len(catalog)),
	)
}
