package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	"github.com/SscSPs/leadvault_backend/internal/platform/config"
	"github.com/SscSPs/leadvault_backend/internal/platform/database"
	"github.com/SscSPs/leadvault_backend/internal/repositories/database/pgsql"
	"github.com/jackc/pgx/v5/pgxpool"
)

// env is what every database-backed command needs. close releases the pool.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	repos  portsrepo.RepositoryProvider
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func loadEnv(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is not set")
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &env{
		cfg:    cfg,
		logger: newLogger(),
		pool:   pool,
		repos:  pgsql.NewRepositoryProvider(pool),
	}, nil
}

func (e *env) close() {
	e.pool.Close()
}
