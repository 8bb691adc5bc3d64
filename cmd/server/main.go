package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/sm-ecommerce/category-service/app/categories"
	"github.com/sm-ecommerce/category-service/app/config"
	"github.com/sm-ecommerce/category-service/app/database"
	"github.com/sm-ecommerce/category-service/app/logging"
	"github.com/sm-ecommerce/category-service/app/server"
	"github.com/sm-ecommerce/category-service/models"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.IsProduction())
	log.Logger = logger

	dsn, err := cfg.DSN()
	if err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	// Initialize database connection
	db, closeDB, err := database.New(cfg.DBDriver, dsn, logger)
	if err != nil {
		return fmt.Errorf("connect to %s database: %w", cfg.DBDriver, err)
	}
	defer func() {
		if err := closeDB(); err != nil {
			logger.Error().Err(err).Msg("Failed to close database")
		}
	}()
	logger.Info().Str("driver", cfg.DBDriver).Msg("Connected to database")

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("access database pool: %w", err)
	}

	// Initialize layers
	repo := models.NewCategoriesRepository(db)
	service := categories.NewCategoryService(repo, logger)
	handler := categories.NewCategoryHandler(service)

	srv := server.New(cfg.HTTPAddr, server.NewHandler(handler, sqlDB, server.Options{
		Logger:         logger,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful shutdown
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
	return nil
}
