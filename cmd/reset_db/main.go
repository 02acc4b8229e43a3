package main

import (
	"context"
	"fmt"

	"foodexpress/config"
	"foodexpress/pkg/logger"
	"foodexpress/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	pg, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		panic(err)
	}
	defer pg.Close()

	// Items stay, they are catalog data. Everything transactional goes.
	_, err = pg.GetPool().Exec(context.Background(),
		"TRUNCATE TABLE users, auth_tokens, drivers, orders, order_items CASCADE")
	if err != nil {
		log.Error(fmt.Sprintf("Failed to truncate tables: %v", err))
	} else {
		log.Info("Successfully truncated users, drivers, orders and order_items tables.")
	}
}
