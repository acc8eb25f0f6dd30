package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/invoice-dashboard/config"
	pginfra "github.com/oksasatya/invoice-dashboard/internal/infrastructure/postgres"
	"github.com/oksasatya/invoice-dashboard/internal/seed"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
)

// Seeds the placeholder dashboard data. Run after migrations; safe to repeat.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
		MaxConns:       2,
		ConnectTimeout: cfg.DBConnectTimeout,
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := seed.Run(ctx, pool, logger); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}
