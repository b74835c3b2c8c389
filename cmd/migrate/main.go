// Command migrate creates or upgrades the database schema and exits. The
// server does the same on startup; this is for running it ahead of a deploy.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/ustwo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ustwo-backend/internal/app"
	"github.com/heartmarshall/ustwo-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		logger.Error("ensure schema failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("schema is up to date", slog.String("build", app.BuildVersion()))
}
