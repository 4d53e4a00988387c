package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/core/services"
	"github.com/SscSPs/leadvault_backend/internal/handlers"
	"github.com/SscSPs/leadvault_backend/internal/middleware"
	"github.com/SscSPs/leadvault_backend/internal/platform/analytics"
	"github.com/SscSPs/leadvault_backend/internal/platform/config"
	"github.com/SscSPs/leadvault_backend/internal/platform/database"
	"github.com/SscSPs/leadvault_backend/internal/platform/payments"
	"github.com/SscSPs/leadvault_backend/internal/platform/storage"
	"github.com/SscSPs/leadvault_backend/internal/repositories/database/pgsql"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:generate swag init -g main.go -d ./,../../internal/handlers,../../internal/dto -o ../docs

// @title LeadVault Backend API
// @version 1.0
// @description Lead management with credit-metered contact unlocks.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description Long-lived API token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Database migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := storage.NewStorage(ctx, storage.ConfigFromApp(cfg))
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to initialize login rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	analyticsClient := analytics.NewClient(cfg.PosthogAPIKey, logger)
	defer analyticsClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, &repos, store, payments.NewStripeProvider(cfg))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(),
		cors.New(cors.Config{
			AllowOrigins:     []string{cfg.FrontendBaseURL},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.APITokenHeader},
			ExposeHeaders:    []string{handlers.NextTokenHeader, "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		LoginLimiter: loginLimiter,
		Analytics:    analyticsClient,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
