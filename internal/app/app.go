package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ustwo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ustwo-backend/internal/adapter/postgres/dateidea"
	"github.com/heartmarshall/ustwo-backend/internal/adapter/postgres/memory"
	"github.com/heartmarshall/ustwo-backend/internal/adapter/postgres/milestone"
	"github.com/heartmarshall/ustwo-backend/internal/config"
	"github.com/heartmarshall/ustwo-backend/internal/retrieval"
	"github.com/heartmarshall/ustwo-backend/internal/service/command"
	"github.com/heartmarshall/ustwo-backend/internal/transport/middleware"
	"github.com/heartmarshall/ustwo-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, ensures the schema, wires repositories and services and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	logger.Info("schema ready")

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(ctx, logger, pool, cfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

// NewHandler builds the repositories and services over pool and returns the
// fully routed HTTP handler. Background work it starts stops with ctx.
func NewHandler(ctx context.Context, logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) http.Handler {
	policy := retrieval.NewPolicy()

	memories := memory.New(pool, policy)
	ideas := dateidea.New(pool, policy)
	milestones := milestone.New(pool)

	commands := command.NewService(logger, memories, ideas, milestones, cfg.Web.PublicURL)

	handlers := rest.Handlers{
		Health:   rest.NewHealthHandler(pool, Version),
		Views:    rest.NewViewHandler(logger, memories, ideas, milestones),
		Commands: rest.NewCommandHandler(commands, logger),
	}
	if cfg.RateLimit.CommandsPerMinute > 0 {
		handlers.CommandLimit = middleware.NewRateLimiter(ctx, cfg.RateLimit.CleanupInterval).
			Limit(cfg.RateLimit.CommandsPerMinute)
	}

	return rest.NewRouter(logger, cfg.CORS, handlers)
}
