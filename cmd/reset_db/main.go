package main

import (
	"context"

	"shopbot/config"
	"shopbot/pkg/logger"
	"shopbot/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	pg, err := postgres.New(context.Background(), cfg, log)

	if err != nil {
		panic(err)
	}
	defer pg.Close()

	// Routines and schema stay; only data goes.
	_, err = pg.GetDB().Exec(context.Background(), "TRUNCATE TABLE logs, purchases, products, users RESTART IDENTITY CASCADE")
	if err != nil {
		log.Error("Failed to truncate tables", logger.Error(err))
	} else {
		log.Info("Successfully truncated users, products, purchases and logs tables.")
	}
}
