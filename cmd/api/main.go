package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"surveybot/internal/api"
	"surveybot/internal/config"
	"surveybot/internal/repository/postgres"
	"surveybot/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Survey API")

	// Load configuration
	cfg, err := config.LoadAPI()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Startup may be interrupted while the database is still coming up
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, cfg.DSN(), cfg.Database.ConnectAttempts, cfg.Database.ConnectDelay, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established",
		zap.String("host", cfg.Database.Host),
		zap.String("name", cfg.Database.Name),
	)

	if err := postgres.Migrate(db, cfg.Database.MigrationsURL, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories and services
	responseRepo := postgres.NewResponseRepo(db)
	responseService := service.NewResponseService(responseRepo)
	authService := service.NewAuthService(cfg.AdminPasswordHash)

	h := api.NewHandler(responseService, authService, logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(h, cfg.AdminHeader),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("API listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("API server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, stopping API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down API gracefully", zap.Error(err))
	}

	logger.Info("API stopped gracefully")
}
